package wincorr

import "fmt"

// Config holds the physical setup of one correction.
type Config struct {
	// WindowCount is the number of window interfaces light crosses,
	// usually 1 or 2.
	WindowCount int
	Mode        Mode
}

// DefaultConfig returns a single window with parasitic-reflection correction.
func DefaultConfig() Config {
	return Config{WindowCount: 1, Mode: ParasiticReflections}
}

// Validate checks the window count and mode.
func (c Config) Validate() error {
	if c.WindowCount < 1 {
		return fmt.Errorf("%w: %d", ErrWindowCount, c.WindowCount)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(c.Mode))
	}
	return nil
}

// Describe returns the info line recorded alongside corrected spectra.
func (c Config) Describe(material string) string {
	return fmt.Sprintf("Window reflection correction: material: %s, quantity: %d, type: %s.",
		material, c.WindowCount, c.Mode)
}
