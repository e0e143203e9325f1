package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ListEditor renders one dynamic entry list. The backing sequence lives in
// the controller; the editor rebuilds its rows from it after every add or
// remove, so the re-seeded blank row appears without special handling.
type ListEditor struct {
	box         *fyne.Container
	rows        *fyne.Container
	entries     func() []string
	onEdit      func(index int, value string)
	onRemove    func(index int)
	multiline   bool
	placeholder string
}

func NewListEditor(title string, multiline bool, placeholder string,
	entries func() []string, onEdit func(int, string), onAdd func(), onRemove func(int)) *ListEditor {
	l := &ListEditor{
		rows:        container.NewVBox(),
		entries:     entries,
		onEdit:      onEdit,
		onRemove:    onRemove,
		multiline:   multiline,
		placeholder: placeholder,
	}

	addBtn := widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), func() {
		onAdd()
		l.Refresh()
	})

	l.box = container.NewVBox(
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		l.rows,
		addBtn,
	)
	l.Refresh()

	return l
}

func (l *ListEditor) Object() fyne.CanvasObject {
	return l.box
}

// Refresh rebuilds the rows from the backing sequence.
func (l *ListEditor) Refresh() {
	l.rows.RemoveAll()

	for i, value := range l.entries() {
		index := i

		var entry *widget.Entry
		if l.multiline {
			entry = widget.NewMultiLineEntry()
			entry.SetMinRowsVisible(3)
			entry.Wrapping = fyne.TextWrapWord
		} else {
			entry = widget.NewEntry()
		}
		entry.SetPlaceHolder(l.placeholder)
		entry.SetText(value)
		// OnChanged is attached after SetText so seeding a row does not
		// echo back into the controller.
		entry.OnChanged = func(v string) {
			l.onEdit(index, v)
		}

		removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			l.onRemove(index)
			l.Refresh()
		})

		l.rows.Add(container.NewBorder(nil, nil, nil, removeBtn, entry))
	}

	l.rows.Refresh()
}
