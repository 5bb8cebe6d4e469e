package progress

import (
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/usecase"
)

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink picks the spinner for interactive terminals and the no-op sink otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Structured() {
		return NewNopSink()
	}
	return NewSpinnerSink()
}
