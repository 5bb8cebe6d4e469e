package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/salted/internal/domain/config"
	"github.com/trebuchet-org/salted/internal/usecase"
)

func TestSpinnerSink_Events(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	sink := newSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "deploying", Message: "Deploying", Spinner: true})
	assert.Equal(t, " Deploying", sink.spinner.Suffix)

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "completed", Message: "Deployed 0xabc"})
	assert.False(t, sink.spinner.Active())
	assert.Contains(t, buf.String(), "✓ Deployed 0xabc")

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "failed", Message: "Deployment failed"})
	assert.Contains(t, buf.String(), "✗ Deployment failed")

	sink.Info("hello")
	sink.Error("oops")
	assert.Contains(t, buf.String(), "hello\n")
	assert.Contains(t, buf.String(), "oops\n")
}

func TestNewSink(t *testing.T) {
	assert.IsType(t, usecase.NopProgress{}, NewSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, usecase.NopProgress{}, NewSink(&config.RuntimeConfig{JSON: true}))
	assert.IsType(t, usecase.NopProgress{}, NewSink(&config.RuntimeConfig{Output: "yaml"}))
	assert.IsType(t, &SpinnerSink{}, NewSink(&config.RuntimeConfig{Output: "text"}))
}
