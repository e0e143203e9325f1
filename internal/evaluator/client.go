package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wlau/cv-job-matcher/internal/models"
)

const (
	evaluatePath     = "/evaluate"
	defaultUserAgent = "cv-job-matcher/1.0"
)

// SubmissionRequest carries everything needed for one evaluation call. The
// URL and description lists must already be filtered of blank entries by
// the caller.
type SubmissionRequest struct {
	CV              *models.CVFile
	JobURLs         []string
	JobDescriptions []string
	APIKey          string
}

// Client talks to the remote CV-job evaluation service.
type Client struct {
	APIURL     string
	HTTPClient *http.Client
	UserAgent  string
	logger     *zap.Logger
}

// New creates a client for the service at apiURL. A zero timeout leaves the
// request bounded only by the transport.
func New(apiURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		APIURL: strings.TrimRight(apiURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: defaultUserAgent,
		logger:    logger,
	}
}

// Evaluate issues the single multipart submission and returns the parsed
// evaluation list. One attempt only; the caller decides what happens on
// failure.
func (c *Client) Evaluate(ctx context.Context, req SubmissionRequest) (*models.EvaluationResponse, error) {
	body, contentType, err := buildForm(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build submission form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL+evaluatePath, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug("submitting evaluation request",
		zap.String("url", httpReq.URL.String()),
		zap.String("cv", req.CV.Name),
		zap.Int("job_urls", len(req.JobURLs)),
		zap.Int("job_descriptions", len(req.JobDescriptions)),
	)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("evaluation request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		c.logger.Warn("evaluation service returned an error",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s", errorDetail(data, resp.Status))
	}

	var response models.EvaluationResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	c.logger.Info("evaluation complete", zap.Int("evaluations", len(response.Evaluations)))

	return &response, nil
}

// errorDetail extracts the service's detail message from an error body,
// falling back to a generic message with the HTTP status.
func errorDetail(data []byte, status string) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	return "evaluation service returned " + status
}

// buildForm assembles the multipart payload: the CV file, the optional
// JSON-encoded job lists and the API key. Empty lists are omitted entirely.
func buildForm(req SubmissionRequest) (*bytes.Buffer, string, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	part, err := w.CreateFormFile("cv", req.CV.Name)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(req.CV.Data); err != nil {
		return nil, "", err
	}

	if len(req.JobURLs) > 0 {
		if err := writeJSONField(w, "job_urls", req.JobURLs); err != nil {
			return nil, "", err
		}
	}
	if len(req.JobDescriptions) > 0 {
		if err := writeJSONField(w, "job_descriptions", req.JobDescriptions); err != nil {
			return nil, "", err
		}
	}

	if err := w.WriteField("api_key", req.APIKey); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &b, w.FormDataContentType(), nil
}

func writeJSONField(w *multipart.Writer, name string, values []string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	return w.WriteField(name, string(data))
}
