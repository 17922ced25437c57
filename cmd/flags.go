package cmd

import (
	"github.com/spf13/pflag"

	"github.com/marcus/dropdown/pkg/dropdown"
)

var (
	_ pflag.Value = (*placementValue)(nil)
	_ pflag.Value = (*triggerValue)(nil)
)

// placementValue is a pflag.Value for --placement.
type placementValue struct {
	p   *dropdown.Placement
	set bool
}

func (v *placementValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *placementValue) Set(s string) error {
	p, err := dropdown.ParsePlacement(s)
	if err != nil {
		return err
	}
	*v.p = p
	v.set = true
	return nil
}

func (v *placementValue) Type() string { return "placement" }

// triggerValue is a pflag.Value for --trigger.
type triggerValue struct {
	mode *dropdown.TriggerMode
	set  bool
}

func (v *triggerValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

func (v *triggerValue) Set(s string) error {
	m, err := dropdown.ParseTriggerMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	v.set = true
	return nil
}

func (v *triggerValue) Type() string { return "trigger" }
