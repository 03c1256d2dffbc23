// Package llm abstracts the remote text-generation service behind a small
// Completer interface: prompt text in, completion text out, fallible.
package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey reports that no service credential is configured.
var ErrNoAPIKey = errors.New("llm: no API key configured")

// ErrEmptyResponse reports that the service returned no usable candidate.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// Completer sends one prompt to a text-generation service and returns the
// raw completion text. Implementations must be safe for sequential reuse;
// the pipeline issues at most one call per documentable unit.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
