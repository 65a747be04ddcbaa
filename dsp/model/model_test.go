package model

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/internal/testutil"
)

var refParams = spectra.Params{A: 2, X0: 1550, W: 10, Bias: 0.1}

func TestLorentzianAtResonance(t *testing.T) {
	out := Lorentzian(spectra.NewAxis([]float64{1550}), refParams)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}

	if math.Abs(out[0]-(-2.1)) > 1e-12 {
		t.Fatalf("T(x0) = %v, want -2.1", out[0])
	}
}

func TestLorentzianHalfDepthAtFactor(t *testing.T) {
	factor := refParams.W / (2 * math.Sqrt(1.0/3.0))
	axis := spectra.NewAxis([]float64{refParams.X0 + factor})

	out := Lorentzian(axis, refParams)
	want := -refParams.A/2 - refParams.Bias
	if math.Abs(out[0]-want) > 1e-12 {
		t.Fatalf("T(x0+factor) = %v, want %v", out[0], want)
	}
}

func TestLorentzianDeterministic(t *testing.T) {
	axis := testutil.Axis(1500, 0.1, 1001)
	a := Lorentzian(axis, refParams)
	b := Lorentzian(axis, refParams)
	testutil.RequireBitIdentical(t, a, b)
}

func TestModelsDoNotMutateAxis(t *testing.T) {
	in := []float64{1540, 1550, 1560}
	axis := spectra.NewAxis(in)

	_ = Lorentzian(axis, refParams)
	_ = Gauss(axis, refParams)
	_ = Hybrid(axis, refParams, 1)

	testutil.RequireBitIdentical(t, axis.Values(), in)
}

func TestSymmetryAroundResonance(t *testing.T) {
	offsets := []float64{0.01, 0.37, 1, 2.5, 7.75, 40}
	x0 := 1550.0
	left := make([]float64, len(offsets))
	right := make([]float64, len(offsets))
	for i, d := range offsets {
		left[i] = x0 - d
		right[i] = x0 + d
	}

	models := []struct {
		name string
		fn   func(spectra.Axis, spectra.Params) spectra.Simulated
	}{
		{"lorentzian", Lorentzian},
		{"gauss", Gauss},
	}

	for _, m := range models {
		t.Run(m.name, func(t *testing.T) {
			p := spectra.Params{A: 2.5, X0: x0, W: 6, Bias: 0.2}
			l := m.fn(spectra.NewAxis(left), p)
			r := m.fn(spectra.NewAxis(right), p)
			testutil.RequireSliceNearlyEqual(t, l, r, 1e-9)
		})
	}
}

func TestGaussAtResonance(t *testing.T) {
	p := spectra.Params{A: 1.5, X0: 1550, W: 4, Bias: 0.3}
	out := Gauss(spectra.NewAxis([]float64{1550}), p)
	if math.Abs(out[0]-(-1.8)) > 1e-12 {
		t.Fatalf("T(x0) = %v, want -1.8", out[0])
	}
}

func TestGaussShape(t *testing.T) {
	p := spectra.Params{A: 1.5, X0: 1550, W: 4, Bias: 0}
	s := p.W / (2 * math.Sqrt(4*math.Abs(math.Log(p.A/3.01))))

	out := Gauss(spectra.NewAxis([]float64{1550 + s}), p)
	want := -p.A * math.Exp(-0.5)
	if math.Abs(out[0]-want) > 1e-12 {
		t.Fatalf("T(x0+s) = %v, want %v", out[0], want)
	}
}

func TestGaussDegenerateAttenuation(t *testing.T) {
	// ln(a/3.01) == 0 makes sigma +Inf, so every exponent collapses to -0.
	p := spectra.Params{A: 3.01, X0: 1550, W: 5, Bias: 0}
	out := Gauss(spectra.NewAxis([]float64{1550, 1560}), p)

	testutil.RequireSliceNearlyEqual(t, out, []float64{-3.01, -3.01}, 0)
}

func TestGaussZeroWidthIsNaN(t *testing.T) {
	p := spectra.Params{A: 3.01, X0: 1550, W: 0, Bias: 0}
	out := Gauss(spectra.NewAxis([]float64{1550, 1560}), p)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Fatalf("out[%d] = %v, want NaN", i, v)
		}
	}
}

func TestGaussSigmaUnderflow(t *testing.T) {
	// s*s underflows to 0: 0/0 at the center, d^2/0 = +Inf elsewhere.
	p := spectra.Params{A: 2, X0: 1550, W: 1e-200, Bias: 0.5}
	out := Gauss(spectra.NewAxis([]float64{1550, 1560}), p)

	if !math.IsNaN(out[0]) {
		t.Fatalf("T(x0) = %v, want NaN", out[0])
	}

	if out[1] != -0.5 {
		t.Fatalf("T(off-center) = %v, want -bias", out[1])
	}
}

func TestLorentzianDegenerateAttenuation(t *testing.T) {
	// a == 3 makes factor +Inf: the squared term vanishes everywhere.
	p := spectra.Params{A: 3, X0: 1550, W: 10, Bias: 0.25}
	out := Lorentzian(spectra.NewAxis([]float64{1540, 1550, 1560}), p)
	testutil.RequireSliceNearlyEqual(t, out, []float64{-3.25, -3.25, -3.25}, 0)

	p.W = 0
	out = Lorentzian(spectra.NewAxis([]float64{1540, 1550}), p)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Fatalf("out[%d] = %v, want NaN", i, v)
		}
	}
}

func TestLorentzianZeroWidth(t *testing.T) {
	p := spectra.Params{A: 2, X0: 1550, W: 0, Bias: 0}
	out := Lorentzian(spectra.NewAxis([]float64{1550, 1551}), p)

	// 0/0 at the center, x/0 = Inf elsewhere.
	if !math.IsNaN(out[0]) {
		t.Fatalf("T(x0) = %v, want NaN", out[0])
	}

	if out[1] != 0 {
		t.Fatalf("T(off-center) = %v, want -0", out[1])
	}
}

func TestNegativeWidthPropagates(t *testing.T) {
	axis := testutil.Axis(1540, 1, 21)
	pos := Lorentzian(axis, refParams)

	neg := refParams
	neg.W = -neg.W
	testutil.RequireSliceNearlyEqual(t, Lorentzian(axis, neg), pos, 0)
}

func TestHybridBelowThresholdIsLorentzian(t *testing.T) {
	axis := testutil.Axis(1530, 0.5, 81)
	for _, fcn := range []float64{-1, 0, 0.25, math.Nextafter(HybridThreshold, 0)} {
		testutil.RequireBitIdentical(t, Hybrid(axis, refParams, fcn), Lorentzian(axis, refParams))
	}
}

func TestHybridAtThresholdIsBlend(t *testing.T) {
	axis := testutil.Axis(1530, 0.5, 81)
	p := spectra.Params{A: 2, X0: 1550, W: 10, Bias: 0.1}

	half := spectra.Params{A: 1, X0: 1550, W: 5, Bias: 0.1}
	ts := Lorentzian(axis, half)
	mg := Gauss(axis, half)
	want := make([]float64, len(ts))
	for i := range want {
		want[i] = ts[i] + mg[i] + p.Bias
	}

	got := Hybrid(axis, p, HybridThreshold)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	if lor := Lorentzian(axis, p); got[50] == lor[50] {
		t.Fatalf("fcn == threshold must not take the Lorentzian branch")
	}
}

func TestHybridBlendAtResonance(t *testing.T) {
	p := spectra.Params{A: 2, X0: 1550, W: 10, Bias: 0.1}
	got := Hybrid(spectra.NewAxis([]float64{1550}), p, 1)

	// (-1 - 0.1) + (-1 - 0.1) + 0.1
	if math.Abs(got[0]-(-2.1)) > 1e-12 {
		t.Fatalf("T(x0) = %v, want -2.1", got[0])
	}
}

func TestEmptyAxis(t *testing.T) {
	var axis spectra.Axis
	for _, k := range Kinds() {
		out, err := Evaluate(k, axis, refParams, WithSelector(1))
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}

		if len(out) != 0 {
			t.Fatalf("%s: len = %d, want 0", k, len(out))
		}
	}
}

func TestEvaluateDispatch(t *testing.T) {
	axis := testutil.Axis(1540, 0.25, 81)

	got, err := Evaluate(KindGauss, axis, refParams)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	testutil.RequireBitIdentical(t, got, Gauss(axis, refParams))

	got, err = Evaluate(KindHybrid, axis, refParams)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	testutil.RequireBitIdentical(t, got, Lorentzian(axis, refParams))

	got, err = Evaluate(KindHybrid, axis, refParams, WithSelector(0.5))
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	testutil.RequireBitIdentical(t, got, Hybrid(axis, refParams, 0.5))

	if len(got) != axis.Len() {
		t.Fatalf("len = %d, want %d", len(got), axis.Len())
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	_, err := Evaluate(Kind(42), testutil.Axis(0, 1, 3), refParams)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"lorentzian", KindLorentzian},
		{" Lorentz ", KindLorentzian},
		{"GAUSS", KindGauss},
		{"gaussian", KindGauss},
		{"hybrid", KindHybrid},
		{"blend", KindHybrid},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("voigt"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Fatalf("round trip of %v failed: %v, %v", k, back, err)
		}
	}

	if got := Kind(9).String(); got != "Kind(9)" {
		t.Fatalf("String() = %q", got)
	}
}
