package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const filePickerPrompt = "Drop your CV here or browse (.docx, .doc, .pdf, .txt)"

// FilePicker shows the chosen CV file and the browse/clear actions. It also
// carries the missing-file highlight driven by the controller.
type FilePicker struct {
	box       *fyne.Container
	bg        *canvas.Rectangle
	nameLabel *widget.Label
	chooseBtn *widget.Button
	clearBtn  *widget.Button
}

func NewFilePicker(onBrowse func(), onClear func()) *FilePicker {
	p := &FilePicker{
		bg:        canvas.NewRectangle(color.Transparent),
		nameLabel: widget.NewLabel(filePickerPrompt),
		chooseBtn: widget.NewButtonWithIcon("Browse...", theme.FolderOpenIcon(), onBrowse),
		clearBtn:  widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), onClear),
	}
	p.clearBtn.Disable()

	p.box = container.NewStack(p.bg, container.NewVBox(
		p.nameLabel,
		container.NewHBox(p.chooseBtn, p.clearBtn),
	))

	return p
}

func (p *FilePicker) Object() fyne.CanvasObject {
	return p.box
}

// SetFile shows the chosen filename; an empty name resets to the prompt.
func (p *FilePicker) SetFile(name string) {
	if name == "" {
		p.nameLabel.SetText(filePickerPrompt)
		p.clearBtn.Disable()
		return
	}

	p.nameLabel.SetText(name)
	p.clearBtn.Enable()
}

// SetHighlight switches the missing-file marker. The flag is owned by the
// controller, not decided here.
func (p *FilePicker) SetHighlight(on bool) {
	if on {
		p.bg.FillColor = theme.Color(theme.ColorNameError)
	} else {
		p.bg.FillColor = color.Transparent
	}
	p.bg.Refresh()
}
