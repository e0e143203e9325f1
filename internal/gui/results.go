package gui

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/wlau/cv-job-matcher/internal/controller"
	"github.com/wlau/cv-job-matcher/internal/export"
	"github.com/wlau/cv-job-matcher/internal/models"
	"github.com/wlau/cv-job-matcher/internal/scoring"
)

// ResultsView renders the evaluation collection as a tab strip with one
// rendered evaluation at a time. An evaluation whose score payload does not
// parse is shown verbatim instead of failing the whole view.
type ResultsView struct {
	ctrl   *controller.Controller
	logger *zap.Logger
	window fyne.Window

	box     *fyne.Container
	tabs    *fyne.Container
	content *fyne.Container
}

func NewResultsView(ctrl *controller.Controller, logger *zap.Logger, window fyne.Window, onBack func()) *ResultsView {
	v := &ResultsView{
		ctrl:    ctrl,
		logger:  logger,
		window:  window,
		tabs:    container.NewHBox(),
		content: container.NewVBox(),
	}

	backBtn := widget.NewButtonWithIcon("Back to Input", theme.NavigateBackIcon(), onBack)
	exportBtn := widget.NewButtonWithIcon("Export to Excel", theme.DocumentSaveIcon(), v.handleExport)

	top := container.NewVBox(
		container.NewHBox(backBtn, exportBtn),
		container.NewHScroll(v.tabs),
	)
	v.box = container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.content))

	return v
}

func (v *ResultsView) Object() fyne.CanvasObject {
	return v.box
}

// Refresh rebuilds the tab strip and renders the focused evaluation.
func (v *ResultsView) Refresh() {
	results := v.ctrl.Results()
	active := v.ctrl.ActiveTab()

	v.tabs.RemoveAll()
	v.content.RemoveAll()

	if len(results) == 0 {
		v.content.Add(widget.NewLabel("No evaluations yet."))
		v.tabs.Refresh()
		v.content.Refresh()
		return
	}

	for i, ev := range results {
		index := i
		btn := widget.NewButton(ev.JobTitle, func() {
			v.ctrl.SelectTab(index)
		})
		if index == active {
			btn.Importance = widget.HighImportance
		}
		v.tabs.Add(btn)
	}

	v.renderEvaluation(results[active])

	v.tabs.Refresh()
	v.content.Refresh()
}

func (v *ResultsView) renderEvaluation(ev models.EvaluationResult) {
	v.content.Add(widget.NewLabelWithStyle(ev.JobTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	if ev.JobURL != "" {
		if u, err := url.Parse(ev.JobURL); err == nil {
			v.content.Add(widget.NewHyperlink(ev.JobURL, u))
		} else {
			v.content.Add(widget.NewLabel(ev.JobURL))
		}
	}

	if ev.JobDescription != "" {
		desc := widget.NewLabel(ev.JobDescription)
		desc.Wrapping = fyne.TextWrapWord
		v.content.Add(widget.NewAccordion(widget.NewAccordionItem("Job Description", desc)))
	}

	b, err := scoring.Parse(ev.ScoreAndExplanation)
	if err != nil {
		// Degraded rendering: show the payload verbatim for this tab only.
		v.logger.Warn("failed to parse score payload",
			zap.String("job", ev.JobTitle), zap.Error(err))

		raw := widget.NewLabel(ev.ScoreAndExplanation)
		raw.Wrapping = fyne.TextWrapWord
		raw.TextStyle = fyne.TextStyle{Monospace: true}
		v.content.Add(widget.NewSeparator())
		v.content.Add(raw)
		return
	}

	v.content.Add(widget.NewSeparator())
	v.content.Add(scoreSection("Overall Match", b.OverallScore, scoring.MaxOverall, b.OverallExplanation))
	v.content.Add(scoreSection("Experience", b.Experience.Score, scoring.MaxExperience, b.Experience.Explanation))
	v.content.Add(scoreSection("Skills", b.Skills.Score, scoring.MaxSkills, b.Skills.Explanation))
	v.content.Add(scoreSection("Personality", b.Personality.Score, scoring.MaxPersonality, b.Personality.Explanation))
}

// scoreSection renders one category: headline with its band, a progress bar
// scaled to the category's own maximum, and the explanation text.
func scoreSection(name string, score, max float64, explanation string) fyne.CanvasObject {
	head := widget.NewLabelWithStyle(
		fmt.Sprintf("%s: %.0f / %.0f (%s)", name, score, max, scoring.Band(score, max)),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	bar := widget.NewProgressBar()
	bar.Max = max
	bar.SetValue(score)

	text := widget.NewLabel(explanation)
	text.Wrapping = fyne.TextWrapWord

	return container.NewVBox(head, bar, text)
}

func (v *ResultsView) handleExport() {
	results := v.ctrl.Results()
	if len(results) == 0 {
		dialog.ShowError(fmt.Errorf("no evaluations to export"), v.window)
		return
	}

	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if uc == nil {
			return
		}
		defer uc.Close()

		outputPath := uc.URI().Path()
		if err := export.ExportToExcel(results, outputPath); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export report: %w", err), v.window)
			return
		}

		dialog.ShowInformation("Export Complete",
			"Report saved to "+filepath.Base(outputPath), v.window)
	}, v.window)

	d.SetFileName(fmt.Sprintf("CV_Match_Report_%s.xlsx", time.Now().Format("2006-01-02_150405")))
	d.Show()
}
