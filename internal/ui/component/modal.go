package component

import (
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/ui/style"
)

// ModalButton is a labeled action on a Modal
type ModalButton struct {
	Label   string
	OnClick func()
}

// Modal overlays a message with action buttons, used for error and
// fatal error reporting
type Modal struct {
	root *tview.Modal
}

// NewModal returns a Modal wired to the given buttons
func NewModal(message string, buttons []ModalButton) *Modal {
	modal := tview.NewModal()

	labels := make([]string, 0, len(buttons))

	for _, b := range buttons {
		labels = append(labels, b.Label)
	}

	modal.AddButtons(labels)

	modal.SetText(message)

	modal.SetDoneFunc(func(_ int, label string) {
		for _, b := range buttons {
			if label == b.Label {
				b.OnClick()
			}
		}
	})

	modal.SetBackgroundColor(style.ColorDefault).
		SetTextColor(style.ColorPurple).
		SetButtonBackgroundColor(style.ColorLightGreen).
		SetButtonTextColor(style.ColorBlack).
		SetBorderColor(style.ColorLightGreen)

	modal.SetButtonActivatedStyle(
		style.StyleDefault.Background(style.ColorLightGreen),
	)

	return &Modal{
		root: modal,
	}
}

// Primitive returns the root primitive for Modal
func (m *Modal) Primitive() tview.Primitive {
	return m.root
}
