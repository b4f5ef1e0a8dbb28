package wincorr

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestReflectanceColumns(t *testing.T) {
	tests := []struct {
		cols int
		raw  bool
		want []int
	}{
		{1, false, nil},
		{2, false, []int{1}},
		{3, false, []int{1}},
		{3, true, []int{1}},
		{5, false, []int{1, 3}},
		{7, false, []int{1, 3, 5}},
		{12, true, []int{3}},
		{12, false, []int{1, 3, 5, 7, 9}},
		{14, true, []int{1, 3, 5, 7, 9, 11}},
	}

	for _, tt := range tests {
		got := ReflectanceColumns(tt.cols, tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ReflectanceColumns(%d, %v) = %v, want %v", tt.cols, tt.raw, got, tt.want)
		}
	}
}

func TestCorrectColumns_MatchesPerColumnCorrect(t *testing.T) {
	const rows = 24
	tab := flatTable(t, 0.9)
	wl := testutil.Grid(0.5, 4, rows)
	r1 := testutil.DeterministicUniform(1, 0.05, 0.6, rows)
	s1 := testutil.DeterministicUniform(2, 0.001, 0.01, rows)
	r2 := testutil.DeterministicUniform(3, 0.05, 0.6, rows)
	s2 := testutil.DeterministicUniform(4, 0.001, 0.01, rows)

	data := mat.NewDense(rows, 5, nil)
	for i, col := range [][]float64{wl, r1, s1, r2, s2} {
		data.SetCol(i, col)
	}
	orig := mat.DenseCopyOf(data)

	cfg := Config{WindowCount: 2, Mode: ExtendedCorrection}
	out, err := CorrectColumns(context.Background(), data, ReflectanceColumns(5, false), tab, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !mat.Equal(data, orig) {
		t.Fatal("input matrix was modified")
	}

	testutil.RequireIdentical(t, mat.Col(nil, 0, out), wl)

	for _, pair := range []struct {
		col   int
		refl  []float64
		sigma []float64
	}{{1, r1, s1}, {3, r2, s2}} {
		want, err := Correct(Spectrum{Wavelength: wl, Reflectance: pair.refl, Uncertainty: pair.sigma}, tab, cfg)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireIdentical(t, mat.Col(nil, pair.col, out), want.Reflectance)
		testutil.RequireIdentical(t, mat.Col(nil, pair.col+1, out), want.Uncertainty)
	}
}

func TestCorrectColumns_TrailingReflectanceWithoutUncertainty(t *testing.T) {
	tab := flatTable(t, 0.95)
	data := mat.NewDense(3, 4, []float64{
		1, 0.10, 0.001, 0.20,
		2, 0.15, 0.002, 0.25,
		3, 0.20, 0.003, 0.30,
	})

	out, err := CorrectColumns(context.Background(), data, []int{1, 3}, tab, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	want, err := Correct(Spectrum{
		Wavelength:  []float64{1, 2, 3},
		Reflectance: []float64{0.20, 0.25, 0.30},
		Uncertainty: []float64{0, 0, 0},
	}, tab, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireIdentical(t, mat.Col(nil, 3, out), want.Reflectance)
}

func TestCorrectColumns_InvalidSelection(t *testing.T) {
	tab := flatTable(t, 0.9)
	data := mat.NewDense(2, 5, nil)

	for _, cols := range [][]int{{0}, {5}, {1, 1}, {1, 2}} {
		_, err := CorrectColumns(context.Background(), data, cols, tab, DefaultConfig())
		if !errors.Is(err, ErrColumn) {
			t.Errorf("columns %v: err = %v, want ErrColumn", cols, err)
		}
	}
}

func TestCorrectColumns_FailureDiscardsResult(t *testing.T) {
	tab := flatTable(t, 0.9)
	data := mat.NewDense(2, 5, []float64{
		1, 0.1, 0.01, 0.5, 0.01,
		2, 0.2, 0.01, 0.2, 0.01,
	})

	out, err := CorrectColumns(context.Background(), data, []int{1, 3}, tab, DefaultConfig(),
		WithSolver(failingSolver{failAt: 0.5}))

	var se *Error
	if !errors.As(err, &se) || se.Stage != StageRoots || se.Index != 0 {
		t.Fatalf("err = %v, want roots failure at sample 0", err)
	}
	if out != nil {
		t.Fatal("failed run returned a matrix")
	}
}
