package controller

import (
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/textedit/group"
)

// Option configures a Controller.
type Option func(*Controller)

// WithClassifier sets the character classifier used for group navigation.
func WithClassifier(c group.Classifier) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.classify = c
		}
	}
}

// WithFilter installs an additional character filter.
func WithFilter(f CharFilter) Option {
	return func(ctl *Controller) {
		ctl.filter = f
	}
}

// WithLogger sets the logger used for rejected edits.
func WithLogger(l *logging.Logger) Option {
	return func(ctl *Controller) {
		if l != nil {
			ctl.log = l
		}
	}
}
