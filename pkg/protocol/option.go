package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type Option interface {
	Name() string
	String() string
	Set(s string) error
}

type BoolOption struct {
	OptionName string
	Value      *bool
}

func (opt *BoolOption) Name() string {
	return opt.OptionName
}

func (opt *BoolOption) String() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.OptionName, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	OptionName string
	Min        int
	Max        int
	Value      *int
}

func (opt *IntOption) Name() string {
	return opt.OptionName
}

func (opt *IntOption) String() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.OptionName, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

// DurationOption is set in milliseconds.
type DurationOption struct {
	OptionName string
	Min        time.Duration
	Max        time.Duration
	Value      *time.Duration
}

func (opt *DurationOption) Name() string {
	return opt.OptionName
}

func (opt *DurationOption) String() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.OptionName, "spin", opt.Value.Milliseconds(), opt.Min.Milliseconds(), opt.Max.Milliseconds())
}

func (opt *DurationOption) Set(s string) error {
	ms, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	var v = time.Duration(ms) * time.Millisecond
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}
