package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
)

// ErrUnknownKind is returned for a [Kind] outside the declared set.
var ErrUnknownKind = errors.New("model: unknown kind")

// Kind identifies a spectral model.
type Kind int

const (
	KindLorentzian Kind = iota
	KindGauss
	KindHybrid
)

var kindNames = [...]string{
	KindLorentzian: "lorentzian",
	KindGauss:      "gauss",
	KindHybrid:     "hybrid",
}

var kindAliases = map[string]Kind{
	"lorentz":  KindLorentzian,
	"gaussian": KindGauss,
	"blend":    KindHybrid,
}

// Kinds returns every model kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLorentzian, KindGauss, KindHybrid}
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive model name.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range kindNames {
		if s == n {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Option configures [Evaluate].
type Option func(*config)

type config struct {
	selector float64
}

// WithSelector sets the fcn selector passed to [Hybrid]. It is ignored by the
// other kinds. The default selector 0 picks the plain Lorentzian branch.
func WithSelector(fcn float64) Option {
	return func(c *config) {
		c.selector = fcn
	}
}

// Evaluate runs the model identified by kind over axis.
func Evaluate(kind Kind, axis spectra.Axis, p spectra.Params, opts ...Option) (spectra.Simulated, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch kind {
	case KindLorentzian:
		return Lorentzian(axis, p), nil
	case KindGauss:
		return Gauss(axis, p), nil
	case KindHybrid:
		return Hybrid(axis, p, cfg.selector), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
