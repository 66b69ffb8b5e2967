package component

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/netdash/netdash/internal/config"
	"github.com/netdash/netdash/internal/ui/style"
)

// SettingsForm edits the persisted configuration.
type SettingsForm struct {
	root             *tview.Form
	concurrencyInput *tview.InputField
	targetInput      *tview.InputField
	intervalInput    *tview.InputField
	timeoutInput     *tview.InputField
	sizeInput        *tview.InputField
	conf             config.Config
	onSubmit         func(conf config.Config)
}

func NewSettingsForm(conf config.Config, onSubmit func(conf config.Config)) *SettingsForm {
	concurrencyInput := tview.NewInputField()
	concurrencyInput.SetLabel("Scan Concurrency: ")
	concurrencyInput.SetText(strconv.Itoa(conf.ScanConcurrency))

	targetInput := tview.NewInputField()
	targetInput.SetLabel("Ping Target: ")
	targetInput.SetText(conf.PingTarget)

	intervalInput := tview.NewInputField()
	intervalInput.SetLabel("Ping Interval (ms): ")
	intervalInput.SetText(strconv.Itoa(conf.PingIntervalMs))

	timeoutInput := tview.NewInputField()
	timeoutInput.SetLabel("Ping Timeout (ms): ")
	timeoutInput.SetText(strconv.Itoa(conf.PingTimeoutMs))

	sizeInput := tview.NewInputField()
	sizeInput.SetLabel("Ping Packet Size: ")
	sizeInput.SetText(strconv.Itoa(conf.PingPacketSize))

	form := tview.NewForm()
	form.AddFormItem(concurrencyInput)
	form.AddFormItem(targetInput)
	form.AddFormItem(intervalInput)
	form.AddFormItem(timeoutInput)
	form.AddFormItem(sizeInput)

	form.SetTitle("Settings")
	form.SetBorder(true)
	form.SetBorderColor(style.ColorPurple)
	form.SetFieldBackgroundColor(tcell.ColorDefault)
	form.SetButtonBackgroundColor(style.ColorLightGreen)
	form.SetLabelColor(style.ColorOrange)
	form.SetButtonTextColor(style.ColorBlack)
	form.SetButtonActivatedStyle(
		style.StyleDefault.Background(style.ColorLightGreen),
	)

	f := &SettingsForm{
		root:             form,
		concurrencyInput: concurrencyInput,
		targetInput:      targetInput,
		intervalInput:    intervalInput,
		timeoutInput:     timeoutInput,
		sizeInput:        sizeInput,
		conf:             conf,
		onSubmit:         onSubmit,
	}

	form.AddButton("Save", f.submit)

	return f
}

func (f *SettingsForm) Primitive() tview.Primitive {
	return f.root
}

func (f *SettingsForm) submit() {
	conf := f.conf

	fields := []struct {
		input *tview.InputField
		dest  *int
	}{
		{f.concurrencyInput, &conf.ScanConcurrency},
		{f.intervalInput, &conf.PingIntervalMs},
		{f.timeoutInput, &conf.PingTimeoutMs},
		{f.sizeInput, &conf.PingPacketSize},
	}

	for _, field := range fields {
		value, err := strconv.Atoi(field.input.GetText())

		if err != nil {
			field.input.SetText(fmt.Sprintf("%d", *field.dest))
			return
		}

		*field.dest = value
	}

	conf.PingTarget = f.targetInput.GetText()

	f.conf = conf
	f.onSubmit(conf)
}
