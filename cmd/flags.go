package cmd

import (
	logger "github.com/PolarWolf314/termlog/internal/logging"
	"github.com/PolarWolf314/termlog/internal/ui"
	"github.com/spf13/pflag"
)

// levelValue is a pflag.Value accepting level names such as "warning".
type levelValue struct {
	level logger.Level
}

var _ pflag.Value = (*levelValue)(nil)

func (v *levelValue) String() string {
	return v.level.String()
}

func (v *levelValue) Set(s string) error {
	level, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	v.level = level
	return nil
}

func (v *levelValue) Type() string {
	return "level"
}

// colorModeValue is a pflag.Value accepting auto, always or never.
type colorModeValue struct {
	mode ui.Mode
}

var _ pflag.Value = (*colorModeValue)(nil)

func (v *colorModeValue) String() string {
	return v.mode.String()
}

func (v *colorModeValue) Set(s string) error {
	mode, err := ui.ParseMode(s)
	if err != nil {
		return err
	}
	v.mode = mode
	return nil
}

func (v *colorModeValue) Type() string {
	return "mode"
}
