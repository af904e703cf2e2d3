package config

import (
	"errors"
	"fmt"

	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/group"
)

// MaxTickRate bounds input.tickRate.
const MaxTickRate = 1000

// Validate checks settings and returns every failure joined with
// errors.Join, or nil.
func (s *Settings) Validate() error {
	var errs []error
	add := func(path string, code ValidationErrorCode, value any, format string, args ...any) {
		errs = append(errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf(format, args...),
			Value:   value,
			Code:    code,
		})
	}

	in := s.Input
	if in.InitialRepeatDelay < 0 {
		add("input.initialRepeatDelay", ErrCodeOutOfRange, in.InitialRepeatDelay, "must not be negative")
	}
	if in.RepeatInterval < 0 {
		add("input.repeatInterval", ErrCodeOutOfRange, in.RepeatInterval, "must not be negative")
	}
	if in.DoubleClickTime < 0 {
		add("input.doubleClickTime", ErrCodeOutOfRange, in.DoubleClickTime, "must not be negative")
	}
	if in.TickRate <= 0 || in.TickRate > MaxTickRate {
		add("input.tickRate", ErrCodeOutOfRange, in.TickRate, "must be between 1 and %d", MaxTickRate)
	}

	if _, ok := logging.ParseLevel(s.Logging.Level); !ok {
		add("logging.level", ErrCodeInvalidEnum, s.Logging.Level, "must be debug, info, warn or error")
	}

	if len(s.Fields) == 0 {
		add("fields", ErrCodeRequiredMissing, 0, "at least one field is required")
	}
	seen := make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		if f.Name == "" {
			add(path+".name", ErrCodeRequiredMissing, f.Name, "must not be empty")
		} else if first, dup := seen[f.Name]; dup {
			add(path+".name", ErrCodeDuplicate, f.Name, "duplicates fields[%d]", first)
		} else {
			seen[f.Name] = i
		}
		if f.Width <= 0 {
			add(path+".width", ErrCodeOutOfRange, f.Width, "must be positive")
		}
		if f.MaxLength < 0 {
			add(path+".maxLength", ErrCodeOutOfRange, f.MaxLength, "must not be negative")
		}
		if f.MaxNumericValue < 0 {
			add(path+".maxNumericValue", ErrCodeOutOfRange, f.MaxNumericValue, "must not be negative")
		}
		if _, err := group.ClassifierFor(group.Mode(f.WordGrouping)); err != nil {
			add(path+".wordGrouping", ErrCodeInvalidEnum, f.WordGrouping, "must be %q or %q",
				group.ModeWhitespace, group.ModePunctuation)
		}
		if f.NumericOnly && !allDigits(f.Text) {
			add(path+".text", ErrCodePatternMismatch, f.Text, "numeric field text must contain only digits")
		}
	}

	return errors.Join(errs...)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !buffer.IsDigit(r) {
			return false
		}
	}
	return true
}
