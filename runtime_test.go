package iocp

import (
	"testing"

	"github.com/windiocp/iocp/internal/logging"
)

func TestDefaultRuntimeConfigHasNonNilLoggerAndObserver(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.Logger == nil {
		t.Error("expected non-nil default logger")
	}
	if cfg.Observer == nil {
		t.Error("expected non-nil default observer")
	}
	if _, ok := cfg.Observer.(NoOpObserver); !ok {
		t.Errorf("expected NoOpObserver default, got %T", cfg.Observer)
	}
}

func TestDefaultRuntimeConfigUsesProcessLogger(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.Logger != logging.Default() {
		t.Error("expected DefaultRuntimeConfig to reuse logging.Default()")
	}
}
