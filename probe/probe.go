// Package probe implements ordered fallback resolution of a single host
// fact. A Probe holds a list of detectors; Resolve tries them strictly in
// order and returns the first candidate that survives normalization.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrSourceUnavailable reports that a detector's file, property,
	// environment variable or helper program could not be read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidValue reports that a detector produced a value which was
	// empty after cleaning or matched a vendor sentinel.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnresolved reports that every detector of a probe failed.
	ErrUnresolved = errors.New("category unresolved")
)

// Detector produces one candidate value for a fact. Implementations return
// an error wrapping ErrSourceUnavailable or ErrInvalidValue when they have
// nothing to offer; any other error is treated the same way.
type Detector interface {
	Detect(ctx context.Context) (string, error)
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(ctx context.Context) (string, error)

// Detect calls f(ctx).
func (f DetectorFunc) Detect(ctx context.Context) (string, error) {
	return f(ctx)
}

// namedDetector attaches a label used in debug logs and Result.Source.
type namedDetector struct {
	name string
	Detector
}

func (n namedDetector) Name() string { return n.name }

// Named wraps d so that it reports name as its source.
func Named(name string, d Detector) Detector {
	return namedDetector{name: name, Detector: d}
}

// NamedFunc is shorthand for Named(name, DetectorFunc(fn)).
func NamedFunc(name string, fn func(ctx context.Context) (string, error)) Detector {
	return Named(name, DetectorFunc(fn))
}

// Probe is an ordered chain of detectors for one fact category.
type Probe struct {
	// Category names the fact in logs and errors, e.g. "os" or "host".
	Category string

	// Detectors are tried in slice order.
	Detectors []Detector

	// Clean, when set, replaces Normalize as the per-candidate cleaning
	// step. It should still return "" for values that must be skipped.
	Clean func(string) string
}

// New returns a Probe for category trying detectors in order.
func New(category string, detectors ...Detector) *Probe {
	return &Probe{Category: category, Detectors: detectors}
}

// Result is a resolved candidate together with the detector that produced it.
type Result struct {
	Value  string
	Source string
	Index  int
}

// ResolveResult tries each detector in order and returns the first value
// that is non-empty after cleaning. Later detectors are never invoked once
// one succeeds. If all fail the returned error wraps ErrUnresolved.
func (p *Probe) ResolveResult(ctx context.Context) (Result, error) {
	clean := p.Clean
	if clean == nil {
		clean = Normalize
	}

	for i, d := range p.Detectors {
		name := detectorName(d, i)

		raw, err := d.Detect(ctx)
		if err != nil {
			log.Debug().Str("category", p.Category).Str("detector", name).Err(err).Msg("detector skipped")
			continue
		}

		value := clean(raw)
		if value == "" {
			log.Debug().Str("category", p.Category).Str("detector", name).Str("raw", raw).
				Err(ErrInvalidValue).Msg("detector skipped")
			continue
		}

		log.Debug().Str("category", p.Category).Str("detector", name).Str("value", value).Msg("resolved")
		return Result{Value: value, Source: name, Index: i}, nil
	}

	return Result{}, fmt.Errorf("%s: %w", p.Category, ErrUnresolved)
}

// Resolve is ResolveResult without the source information.
func (p *Probe) Resolve(ctx context.Context) (string, error) {
	r, err := p.ResolveResult(ctx)
	return r.Value, err
}

// ResolveOr resolves the probe, substituting def when every detector fails.
// def should itself be non-empty.
func (p *Probe) ResolveOr(ctx context.Context, def string) string {
	v, err := p.Resolve(ctx)
	if err != nil {
		return def
	}
	return v
}

func detectorName(d Detector, i int) string {
	if n, ok := d.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("#%d", i)
}
