package main

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/menyentuh/website/internal/webform"
)

// terminalView renders form feedback through the CLI logger
type terminalView struct {
	spinner *spinner.Spinner
}

func newTerminalView() *terminalView {
	return &terminalView{spinner: spinner.New(spinner.CharSets[14], 120*time.Millisecond)}
}

func (v *terminalView) Focus(field string) {
	logger.Debug("Field needs attention: --%s", flagForField[field])
}

func (v *terminalView) ShowStatus(status webform.Status, message string) {
	switch status {
	case webform.StatusSending:
		v.spinner.Suffix = " " + message
	case webform.StatusSuccess:
		logger.Info("✅ %s", message)
	case webform.StatusInvalid, webform.StatusError:
		logger.Error("%s", message)
	}
}

func (v *terminalView) SetBusy(busy bool) {
	if busy {
		v.spinner.Start()
		return
	}
	v.spinner.Stop()
}

func (v *terminalView) Reset() {}
