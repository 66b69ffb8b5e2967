package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/ui/key"
	"github.com/netdash/netdash/internal/ui/style"
)

type SwitchViewInput struct {
	root     *tview.InputField
	onSubmit func(text string)
}

func NewSwitchViewInput(onSubmit func(text string)) *SwitchViewInput {
	input := tview.NewInputField()
	input.SetFieldStyle(style.StyleDefault.Dim(true))
	input.SetBorderPadding(0, 0, 1, 1)
	input.SetPlaceholderStyle(style.StyleDefault.Dim(true))

	input.SetFocusFunc(func() {
		input.SetBorder(true)
		input.SetBorderColor(style.ColorPurple)
		input.SetPlaceholder("Enter view: overview, interfaces, traffic, scan, ping, history, settings")
	})

	input.SetBlurFunc(func() {
		input.SetBorder(false)
		input.SetPlaceholder("")
	})

	si := &SwitchViewInput{
		root:     input,
		onSubmit: onSubmit,
	}

	si.root.SetDoneFunc(func(k tcell.Key) {
		if k == key.KeyEnter {
			si.onSubmit(si.root.GetText())
			si.root.SetText("")
		}
	})

	return si
}

func (i *SwitchViewInput) Primitive() tview.Primitive {
	return i.root
}
