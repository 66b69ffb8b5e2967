package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/netdash/netdash/internal/core"
	"github.com/netdash/netdash/internal/event"
	"github.com/netdash/netdash/internal/scanner"
	"github.com/netdash/netdash/internal/ui/component"
	"github.com/netdash/netdash/internal/ui/key"
)

// tickInterval drives the drain-and-render cadence
const tickInterval = 500 * time.Millisecond

type app struct {
	ctx     context.Context
	cancel  context.CancelFunc
	appCore *core.Core
	tvApp   *tview.Application
	view    *view

	eventChan        chan event.Event
	errorListenerId  int
	fatalListenerId  int
	completeChan     chan event.Event
	completeListener int

	showingSwitchView bool
	showingModal      bool
}

func newApp(appCore *core.Core) *app {
	ctx, cancel := context.WithCancel(context.Background())

	tvApp := tview.NewApplication()

	uiApp := &app{
		ctx:          ctx,
		cancel:       cancel,
		appCore:      appCore,
		tvApp:        tvApp,
		eventChan:    make(chan event.Event, 100),
		completeChan: make(chan event.Event, 100),
	}

	events := appCore.Events()

	uiApp.errorListenerId = events.RegisterListener(
		event.ErrorEventType,
		uiApp.eventChan,
	)
	uiApp.fatalListenerId = events.RegisterListener(
		event.FatalErrorEventType,
		uiApp.eventChan,
	)
	uiApp.completeListener = events.RegisterListener(
		event.ScanCompleteEventType,
		uiApp.completeChan,
	)

	uiApp.view = newView(appCore, func(p tview.Primitive) {
		tvApp.SetFocus(p)
	})

	return uiApp
}

func (a *app) bindKeys() {
	a.tvApp.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		switch evt.Key() {
		case key.KeyCtrlC:
			a.stop()
			return evt
		case key.KeyEsc:
			if a.showingSwitchView {
				a.hideSwitchViewInput()
				return nil
			}
		}

		if a.showingModal || a.isEditing() {
			return evt
		}

		switch evt.Rune() {
		case key.RuneColon:
			a.showSwitchViewInput()
			return nil
		case key.RuneStart:
			if a.toggleProbing() {
				return nil
			}
		case key.RuneRetry:
			if a.view.focusedName == "overview" {
				a.appCore.Catalog().Reload()
				a.appCore.Dashboard().Refresh()
				a.view.updateHeader()
				return nil
			}
		case 'e':
			if a.view.focusedName == "scan" {
				a.tvApp.SetFocus(a.view.scanPage.CIDRInput())
				return nil
			}
		case key.RuneDown, key.RuneUp:
			if a.moveCursor(evt.Rune() == key.RuneDown) {
				return nil
			}
		}

		return evt
	})
}

// toggleProbing starts or stops the probing component behind the
// current view. Reports whether the key was consumed.
func (a *app) toggleProbing() bool {
	switch a.view.focusedName {
	case "scan":
		if a.appCore.Scanner().Status() == scanner.StatusScanning {
			a.appCore.StopScan()
		} else {
			a.appCore.StartScan(a.view.scanPage.CIDR())
		}

		return true
	case "ping":
		if a.appCore.Ping().Running() {
			a.appCore.StopPing()
		} else {
			a.appCore.StartPing()
		}

		return true
	}

	return false
}

// moveCursor advances the list cursor behind the current view and
// re-renders so the highlight moves without waiting for the next tick.
// Reports whether the key was consumed.
func (a *app) moveCursor(down bool) bool {
	switch a.view.focusedName {
	case "scan":
		if down {
			a.appCore.Scanner().SelectNext()
		} else {
			a.appCore.Scanner().SelectPrevious()
		}
	case "interfaces":
		if down {
			a.appCore.Catalog().SelectNext()
		} else {
			a.appCore.Catalog().SelectPrevious()
		}
	default:
		return false
	}

	a.view.render()

	return true
}

// isEditing reports whether a text input currently holds focus, in
// which case rune shortcuts must pass through untouched.
func (a *app) isEditing() bool {
	switch a.tvApp.GetFocus().(type) {
	case *tview.InputField, *tview.Form, *tview.Button, *tview.Checkbox, *tview.DropDown:
		return true
	}

	return false
}

func (a *app) showSwitchViewInput() {
	a.showingSwitchView = true
	a.tvApp.SetFocus(a.view.header.SwitchViewInput().Primitive())
}

func (a *app) hideSwitchViewInput() {
	a.showingSwitchView = false
	a.view.focus()
}

// tick drives the whole pipeline: drain probe events into state, then
// re-render the visible page. Runs on the draw queue so it never races
// input handling.
func (a *app) tick() {
	go func() {
		ticker := time.NewTicker(tickInterval)

		defer ticker.Stop()

		for {
			select {
			case <-a.ctx.Done():
				return
			case <-ticker.C:
				a.tvApp.QueueUpdateDraw(func() {
					a.appCore.Update()
					a.view.render()
				})
			}
		}
	}()
}

func (a *app) processBackgroundEvents() {
	go func() {
		for {
			select {
			case <-a.ctx.Done():
				return
			case <-a.completeChan:
				a.tvApp.QueueUpdateDraw(func() {
					a.view.reloadHistory()
				})
			case evt := <-a.eventChan:
				a.tvApp.QueueUpdateDraw(func() {
					a.showErrorModal(evt)
				})
			}
		}
	}()
}

func (a *app) showErrorModal(evt event.Event) {
	message := "something went wrong"

	if err, ok := evt.Payload.(error); ok {
		message = err.Error()
	}

	fatal := evt.Type == event.FatalErrorEventType

	modal := component.NewModal(message, []component.ModalButton{
		{
			Label: "OK",
			OnClick: func() {
				a.showingModal = false

				if fatal {
					a.stop()
					return
				}

				a.view.pages.RemovePage("error")
				a.view.focus()
			},
		},
	})

	a.showingModal = true

	a.view.pages.AddPage("error", modal.Primitive(), true, true)
	a.tvApp.SetFocus(modal.Primitive())
}

func (a *app) stop() {
	events := a.appCore.Events()

	events.RemoveListener(a.errorListenerId)
	events.RemoveListener(a.fatalListenerId)
	events.RemoveListener(a.completeListener)
	a.cancel()
	a.appCore.Stop()
	a.tvApp.Stop()
}

func (a *app) run() error {
	a.bindKeys()
	a.tick()
	a.processBackgroundEvents()
	return a.tvApp.SetRoot(a.view.root, true).EnableMouse(true).Run()
}
