package models

import "strings"

// EvaluationResult is one job posting together with the evaluation
// service's match assessment against the uploaded CV. Results are produced
// only by the service response and are never modified afterwards.
type EvaluationResult struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url,omitempty"`
	// ScoreAndExplanation is an embedded JSON document, possibly wrapped
	// in markdown code fences by the upstream model.
	ScoreAndExplanation string `json:"score_and_explanation"`
}

// EvaluationResponse is the service's reply to one submission.
type EvaluationResponse struct {
	Evaluations []EvaluationResult `json:"evaluations"`
}

// CVFile is the selected resume, read fully into memory when chosen.
type CVFile struct {
	Name string
	Data []byte
}

// DraftSubmission is the in-progress, not-yet-sent collection of file and
// job inputs. Blank list entries are kept while editing and filtered out
// only when the outbound payload is built.
type DraftSubmission struct {
	CV              *CVFile
	JobURLs         []string
	JobDescriptions []string
}

// NonBlank returns the entries that are not empty or whitespace-only,
// preserving order and the entries' original text.
func NonBlank(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	return out
}

// HasJobTarget reports whether the draft names at least one non-blank job
// URL or job description.
func (d *DraftSubmission) HasJobTarget() bool {
	return len(NonBlank(d.JobURLs)) > 0 || len(NonBlank(d.JobDescriptions)) > 0
}
