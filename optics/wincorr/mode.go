package wincorr

import (
	"fmt"
	"strings"
)

// Mode selects the post-correction applied to the polynomial root.
type Mode int

const (
	// ParasiticReflections keeps the root unchanged (collimated beam).
	ParasiticReflections Mode = iota
	// ExtendedCorrection applies the empirical diffuse-geometry calibration.
	ExtendedCorrection
)

// String returns the mode name as written into correction info lines.
func (m Mode) String() string {
	switch m {
	case ParasiticReflections:
		return "parasitic reflections"
	case ExtendedCorrection:
		return "extended correction"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == ParasiticReflections || m == ExtendedCorrection
}

// ParseMode parses a mode name. Matching is case-insensitive and accepts
// the short forms "parasitic" and "extended".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parasitic", "parasitic reflections", "parasitic-reflections":
		return ParasiticReflections, nil
	case "extended", "extended correction", "extended-correction":
		return ExtendedCorrection, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
