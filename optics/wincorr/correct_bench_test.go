package wincorr

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/optics/transmission"
)

func BenchmarkCorrect(b *testing.B) {
	tab, err := transmission.New([]float64{0.3, 0.7, 1.5, 3, 5}, []float64{0.78, 0.85, 0.87, 0.86, 0.6})
	if err != nil {
		b.Fatal(err)
	}

	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, tc := range sizes {
		spec := Spectrum{
			Wavelength:  testutil.Grid(0.3, 5, tc.size),
			Reflectance: testutil.DeterministicUniform(1, 0.02, 0.8, tc.size),
			Uncertainty: testutil.DC(0.005, tc.size),
		}

		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("%s/workers=%d", tc.name, workers), func(b *testing.B) {
				for range b.N {
					if _, err := Correct(spec, tab, DefaultConfig(), WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
