package wincorr

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"parasitic", ParasiticReflections},
		{"parasitic reflections", ParasiticReflections},
		{"  Parasitic-Reflections ", ParasiticReflections},
		{"extended", ExtendedCorrection},
		{"Extended Correction", ExtendedCorrection},
		{"extended-correction", ExtendedCorrection},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("diffuse"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode(diffuse) err = %v", err)
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{ParasiticReflections, ExtendedCorrection} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}

		var back Mode
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != m {
			t.Fatalf("round trip %v -> %q -> %v", m, b, back)
		}
	}

	if _, err := Mode(5).MarshalText(); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("MarshalText(5) err = %v", err)
	}

	if got := Mode(5).String(); got != "Mode(5)" {
		t.Fatalf("String = %q", got)
	}
}

func TestConfigDescribe(t *testing.T) {
	cfg := Config{WindowCount: 2, Mode: ExtendedCorrection}
	want := "Window reflection correction: material: sapphire window, quantity: 2, type: extended correction."
	if got := cfg.Describe("sapphire window"); got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}

func TestStageString(t *testing.T) {
	names := map[Stage]string{
		StageInput:         "input",
		StageInterpolation: "interpolation",
		StagePolynomial:    "polynomial",
		StageRoots:         "roots",
		StageTransform:     "transform",
		StageUncertainty:   "uncertainty",
		StageCanceled:      "canceled",
		Stage(42):          "Stage(42)",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	base := errors.New("boom")

	e := &Error{Stage: StageRoots, Index: 4, Err: base}
	if got := e.Error(); got != "wincorr: roots stage failed at sample 4: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(e, base) {
		t.Fatal("Error does not unwrap")
	}

	e = &Error{Stage: StageInput, Index: -1, Err: base}
	if got := e.Error(); got != "wincorr: input stage failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
}
