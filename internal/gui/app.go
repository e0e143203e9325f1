package gui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/wlau/cv-job-matcher/internal/config"
	"github.com/wlau/cv-job-matcher/internal/controller"
	"github.com/wlau/cv-job-matcher/internal/evaluator"
	"github.com/wlau/cv-job-matcher/internal/ingestion"
	"github.com/wlau/cv-job-matcher/internal/storage"
)

const appTitle = "CV Job Matcher"

// App is the main GUI application. All canonical state lives in the
// controller; the widgets here only render it and report user intent back.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	logger     *zap.Logger
	ctrl       *controller.Controller

	// UI components
	filePicker  *FilePicker
	urlList     *ListEditor
	descList    *ListEditor
	statusLabel *widget.Label
	submitBtn   *widget.Button
	apiKeyEntry *widget.Entry

	sidebar      *fyne.Container
	inputScroll  *container.Scroll
	resultsView  *ResultsView
	settingsPage fyne.CanvasObject
}

// New creates the GUI application and wires it to the evaluation service.
func New(cfg *config.Config, log *zap.Logger) *App {
	fyneApp := app.NewWithID("com.github.wlau.cv-job-matcher")
	w := fyneApp.NewWindow(appTitle)
	w.Resize(fyne.NewSize(1000, 700))

	store := storage.NewPrefStore(fyneApp.Preferences())
	creds := storage.NewCredentialStore(store)
	client := evaluator.New(cfg.ServiceURL, cfg.Timeout, log)

	guiApp := &App{
		fyneApp:    fyneApp,
		mainWindow: w,
		cfg:        cfg,
		logger:     log,
	}
	guiApp.ctrl = controller.New(client, creds, &notifier{app: fyneApp, window: w}, log)

	guiApp.setupUI()
	guiApp.wireHooks()

	return guiApp
}

// Run starts the GUI application.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

func (a *App) setupUI() {
	a.inputScroll = a.createInputView()
	a.resultsView = NewResultsView(a.ctrl, a.logger, a.mainWindow, a.ctrl.ShowInput)
	a.settingsPage = a.createSettingsPage()

	a.sidebar = container.NewVBox(
		widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
			a.ctrl.SetPage(controller.PageHome)
		}),
		widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
			a.ctrl.SetPage(controller.PageSettings)
		}),
	)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.MenuIcon(), a.ctrl.ToggleSidebar),
	)

	content := container.NewStack(a.inputScroll, a.resultsView.Object(), a.settingsPage)
	a.mainWindow.SetContent(container.NewBorder(toolbar, nil, a.sidebar, nil, content))

	// Window-level drop target: the first file wins, extras are ignored.
	a.mainWindow.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		a.loadFile(uris[0].Path())
	})

	a.refreshView()
}

func (a *App) createInputView() *container.Scroll {
	a.filePicker = NewFilePicker(a.handleBrowse, a.handleClearFile)

	a.urlList = NewListEditor("Job URLs", false, "https://...",
		a.ctrl.JobURLs, a.ctrl.EditJobURL, a.ctrl.AddJobURL, a.ctrl.RemoveJobURL)
	a.descList = NewListEditor("Job Descriptions", true, "Paste a full job description...",
		a.ctrl.JobDescriptions, a.ctrl.EditJobDescription, a.ctrl.AddJobDescription, a.ctrl.RemoveJobDescription)

	a.statusLabel = widget.NewLabel("Ready")
	a.submitBtn = widget.NewButtonWithIcon("Evaluate", theme.MailSendIcon(), a.handleSubmit)
	a.submitBtn.Importance = widget.HighImportance

	return container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Your CV", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.filePicker.Object(),
		widget.NewSeparator(),
		a.urlList.Object(),
		widget.NewSeparator(),
		a.descList.Object(),
		widget.NewSeparator(),
		a.statusLabel,
		a.submitBtn,
	))
}

func (a *App) createSettingsPage() fyne.CanvasObject {
	a.apiKeyEntry = widget.NewPasswordEntry()
	a.apiKeyEntry.SetPlaceHolder("Gemini API key")
	a.apiKeyEntry.SetText(a.ctrl.Credential())
	// Persist on every edit; the reveal toggle never touches the value.
	a.apiKeyEntry.OnChanged = a.ctrl.SetCredential

	form := widget.NewForm(
		widget.NewFormItem("API Key", a.apiKeyEntry),
		widget.NewFormItem("Evaluation Service", widget.NewLabel(a.cfg.ServiceURL)),
	)

	return container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
	)
}

// wireHooks connects controller state changes back into the widget tree.
// Hooks may fire from the submission goroutine, so every update goes
// through fyne.Do.
func (a *App) wireHooks() {
	a.ctrl.OnViewChanged = func() {
		fyne.Do(a.refreshView)
	}
	a.ctrl.OnStatus = func(message string) {
		fyne.Do(func() {
			a.statusLabel.SetText(message)
		})
	}
	a.ctrl.OnHighlightFile = func(on bool) {
		fyne.Do(func() {
			a.filePicker.SetHighlight(on)
			if on {
				a.inputScroll.ScrollToTop()
			}
		})
	}
}

// refreshView applies the controller's view state to the widget tree.
func (a *App) refreshView() {
	if a.ctrl.SidebarOpen() {
		a.sidebar.Show()
	} else {
		a.sidebar.Hide()
	}

	a.inputScroll.Hide()
	a.resultsView.Object().Hide()
	a.settingsPage.Hide()

	switch {
	case a.ctrl.Page() == controller.PageSettings:
		a.settingsPage.Show()
	case a.ctrl.View() == controller.ViewResults:
		a.resultsView.Refresh()
		a.resultsView.Object().Show()
	default:
		a.inputScroll.Show()
	}
}

func (a *App) handleSubmit() {
	a.submitBtn.Disable()

	// The controller reports every outcome through the notifier and the
	// hooks, so the error return needs no extra handling here.
	go func() {
		_ = a.ctrl.Submit(context.Background())

		fyne.Do(func() {
			a.submitBtn.Enable()
			a.refreshView()
		})
	}()
}

func (a *App) handleBrowse() {
	d := dialog.NewFileOpen(func(uc fyne.URIReadCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		path := uc.URI().Path()
		uc.Close()
		a.loadFile(path)
	}, a.mainWindow)
	d.SetFilter(fynestorage.NewExtensionFileFilter(ingestion.AllowedExtensions))
	d.Show()
}

// loadFile reads the chosen file into the draft. The extension allow-list
// is advisory and only filters the picker dialog; dropped files of any
// type are accepted and left to the service to validate.
func (a *App) loadFile(path string) {
	cv, err := ingestion.ReadCV(path)
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	if !ingestion.Allowed(cv.Name) {
		a.logger.Debug("file type outside the advisory allow-list", zap.String("file", cv.Name))
	}

	a.ctrl.SetCV(cv)
	a.filePicker.SetFile(cv.Name)
}

func (a *App) handleClearFile() {
	a.ctrl.ClearCV()
	a.filePicker.SetFile("")
}
