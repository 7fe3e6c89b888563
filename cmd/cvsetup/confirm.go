package main

import (
	"github.com/charmbracelet/huh"

	"github.com/zhanghan177/cvsetup/internal/config"
)

// runConfirmForm runs a confirm form whose result lands in value. Tests swap
// this to script an answer without a TTY.
var runConfirmForm = func(form *huh.Form, value *bool) error {
	return form.Run()
}

// confirmRun asks the operator to confirm the provisioning run.
func confirmRun(cfg *config.Config) (bool, error) {
	proceed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(confirmPrompt(cfg)).
				Value(&proceed),
		),
	)
	if err := runConfirmForm(form, &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}
