package gui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// notifier delivers controller messages through the toolkit. It can be
// called from the submission goroutine, so everything goes through fyne.Do.
type notifier struct {
	app    fyne.App
	window fyne.Window
}

func (n *notifier) Success(message string) {
	fyne.Do(func() {
		n.app.SendNotification(&fyne.Notification{
			Title:   appTitle,
			Content: message,
		})
	})
}

func (n *notifier) Error(message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), n.window)
	})
}
