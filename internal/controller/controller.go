package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wlau/cv-job-matcher/internal/evaluator"
	"github.com/wlau/cv-job-matcher/internal/models"
	"github.com/wlau/cv-job-matcher/internal/storage"
)

// Page is the top-level navigation target.
type Page string

const (
	PageHome     Page = "home"
	PageSettings Page = "settings"
)

// View selects between the input form and the results display on the home
// page.
type View string

const (
	ViewInput   View = "input"
	ViewResults View = "results"
)

// State of the submission machine. Failed collapses straight back to Idle
// after reporting, so only two states are observable.
type State int

const (
	Idle State = iota
	Submitting
)

// Pre-flight failures surfaced to the user. Service failures carry the
// service's own message instead.
var (
	ErrMissingFile       = errors.New("please choose a CV file before submitting")
	ErrNoJobTarget       = errors.New("add at least one job URL or job description")
	ErrMissingCredential = errors.New("set your API key in Settings first")
)

// Service issues one evaluation submission.
type Service interface {
	Evaluate(ctx context.Context, req evaluator.SubmissionRequest) (*models.EvaluationResponse, error)
}

// Notifier delivers fire-and-forget user-visible messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Controller owns all canonical client state: the draft submission, the
// credential, the results collection and the view state. Widgets report
// user intent through its methods and observe changes through the optional
// hook callbacks. The controller is toolkit-independent; the GUI wraps the
// hooks in main-thread dispatches.
type Controller struct {
	mu       sync.Mutex
	logger   *zap.Logger
	service  Service
	creds    *storage.CredentialStore
	notifier Notifier

	draft   models.DraftSubmission
	results []models.EvaluationResult

	state       State
	page        Page
	view        View
	sidebarOpen bool
	activeTab   int

	// OnViewChanged fires after any navigation, tab or results change.
	OnViewChanged func()
	// OnStatus carries the user-visible progress label text.
	OnStatus func(message string)
	// OnHighlightFile drives the file selector's missing-file highlight.
	OnHighlightFile func(on bool)
}

func New(service Service, creds *storage.CredentialStore, notifier Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		logger:   logger,
		service:  service,
		creds:    creds,
		notifier: notifier,
		page:     PageHome,
		view:     ViewInput,
		draft: models.DraftSubmission{
			// The form always starts with one editable row per list.
			JobURLs:         []string{""},
			JobDescriptions: []string{""},
		},
	}
}

// --- Dynamic list editing ---

func (c *Controller) JobURLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.draft.JobURLs...)
}

func (c *Controller) JobDescriptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.draft.JobDescriptions...)
}

func (c *Controller) EditJobURL(index int, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	editEntry(c.draft.JobURLs, index, value)
}

func (c *Controller) EditJobDescription(index int, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	editEntry(c.draft.JobDescriptions, index, value)
}

func (c *Controller) AddJobURL() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.JobURLs = append(c.draft.JobURLs, "")
}

func (c *Controller) AddJobDescription() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.JobDescriptions = append(c.draft.JobDescriptions, "")
}

func (c *Controller) RemoveJobURL(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.JobURLs = removeEntry(c.draft.JobURLs, index)
}

func (c *Controller) RemoveJobDescription(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.JobDescriptions = removeEntry(c.draft.JobDescriptions, index)
}

// editEntry replaces the entry at index, silently ignoring out-of-bounds
// indices.
func editEntry(list []string, index int, value string) {
	if index >= 0 && index < len(list) {
		list[index] = value
	}
}

// removeEntry deletes the entry at index. Removing the final entry re-seeds
// one blank row so the form always shows an editable field.
func removeEntry(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		return list
	}

	list = append(list[:index], list[index+1:]...)
	if len(list) == 0 {
		list = []string{""}
	}

	return list
}

// --- File selection ---

// SetCV records the chosen file and clears the missing-file highlight.
func (c *Controller) SetCV(file *models.CVFile) {
	c.mu.Lock()
	c.draft.CV = file
	c.mu.Unlock()

	c.highlightFile(false)
}

func (c *Controller) ClearCV() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.CV = nil
}

func (c *Controller) CV() *models.CVFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.CV
}

// --- Credential ---

func (c *Controller) SetCredential(value string) {
	c.creds.Set(value)
}

func (c *Controller) Credential() string {
	return c.creds.Get()
}

// --- Navigation and results ---

func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) SetPage(p Page) {
	c.mu.Lock()
	c.page = p
	c.mu.Unlock()

	c.viewChanged()
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// ShowInput returns from the results display to the input form.
func (c *Controller) ShowInput() {
	c.mu.Lock()
	c.view = ViewInput
	c.mu.Unlock()

	c.viewChanged()
}

func (c *Controller) ToggleSidebar() {
	c.mu.Lock()
	c.sidebarOpen = !c.sidebarOpen
	c.mu.Unlock()

	c.viewChanged()
}

func (c *Controller) SidebarOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sidebarOpen
}

func (c *Controller) Results() []models.EvaluationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.EvaluationResult(nil), c.results...)
}

func (c *Controller) ActiveTab() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// SelectTab focuses the result at index k; out-of-range indices are
// ignored.
func (c *Controller) SelectTab(k int) {
	c.mu.Lock()
	if k < 0 || k >= len(c.results) {
		c.mu.Unlock()
		return
	}
	c.activeTab = k
	c.mu.Unlock()

	c.viewChanged()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// --- Submission ---

// Submit runs the submission state machine. It blocks until the service
// responds, so the GUI calls it from a goroutine; at most one submission is
// in flight because the machine refuses to leave Idle twice. Validation
// failures never touch the network and leave results untouched.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return nil
	}

	// The file check happens before entering Submitting.
	if c.draft.CV == nil {
		c.mu.Unlock()
		c.notifier.Error(ErrMissingFile.Error())
		c.highlightFile(true)
		return ErrMissingFile
	}

	c.state = Submitting
	cv := c.draft.CV
	urls := models.NonBlank(c.draft.JobURLs)
	descs := models.NonBlank(c.draft.JobDescriptions)
	c.mu.Unlock()

	c.status("Evaluating your CV against the selected jobs...")

	defer func() {
		c.mu.Lock()
		c.state = Idle
		c.mu.Unlock()
	}()

	if len(urls) == 0 && len(descs) == 0 {
		c.status("Ready")
		c.notifier.Error(ErrNoJobTarget.Error())
		return ErrNoJobTarget
	}

	if strings.TrimSpace(c.creds.Get()) == "" {
		c.status("Ready")
		c.notifier.Error(ErrMissingCredential.Error())
		c.SetPage(PageSettings)
		return ErrMissingCredential
	}

	resp, err := c.service.Evaluate(ctx, evaluator.SubmissionRequest{
		CV:              cv,
		JobURLs:         urls,
		JobDescriptions: descs,
		APIKey:          c.creds.Get(),
	})
	if err != nil {
		c.logger.Warn("evaluation failed", zap.Error(err))
		c.status("Ready")
		c.notifier.Error(err.Error())
		return err
	}

	c.mu.Lock()
	c.results = resp.Evaluations
	c.activeTab = 0
	c.view = ViewResults
	c.mu.Unlock()

	c.status(fmt.Sprintf("Received %d evaluations", len(resp.Evaluations)))
	c.notifier.Success(fmt.Sprintf("Received %d evaluations", len(resp.Evaluations)))
	c.viewChanged()

	return nil
}

// --- Hook dispatch ---

func (c *Controller) viewChanged() {
	if c.OnViewChanged != nil {
		c.OnViewChanged()
	}
}

func (c *Controller) status(message string) {
	if c.OnStatus != nil {
		c.OnStatus(message)
	}
}

func (c *Controller) highlightFile(on bool) {
	if c.OnHighlightFile != nil {
		c.OnHighlightFile(on)
	}
}
