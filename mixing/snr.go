// SPDX-License-Identifier: EPL-2.0

package mixing

import (
	"fmt"
	"strings"
)

// SNRMode selects how the mixing SNR is chosen.
type SNRMode int

const (
	// SNRFixed uses SNRSource.Fixed.
	SNRFixed SNRMode = iota
	// SNRLow draws an integer from [0, 5) dB.
	SNRLow
	// SNRMid draws an integer from [-2, 3) dB.
	SNRMid
	// SNRHigh draws an integer from [-5, 0) dB.
	SNRHigh
)

var snrModeNames = map[SNRMode]string{
	SNRFixed: "fixed",
	SNRLow:   "low",
	SNRMid:   "mid",
	SNRHigh:  "high",
}

func (m SNRMode) String() string {
	if name, ok := snrModeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("SNRMode(%d)", int(m))
}

// ParseSNRMode accepts the names printed by String, case-insensitively.
func ParseSNRMode(s string) (SNRMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range snrModeNames {
		if n == name {
			return mode, nil
		}
	}

	return SNRFixed, fmt.Errorf("%w: %q", ErrInvalidSNRMode, s)
}

// UnmarshalText lets SNRMode be read from flags and environment variables.
func (m *SNRMode) UnmarshalText(text []byte) error {
	mode, err := ParseSNRMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}

// bounds returns the half-open integer range [lo, hi) a random mode draws from.
func (m SNRMode) bounds() (lo, hi int, ok bool) {
	switch m {
	case SNRLow:
		return 0, 5, true
	case SNRMid:
		return -2, 3, true
	case SNRHigh:
		return -5, 0, true
	default:
		return 0, 0, false
	}
}

// SNRSource describes the SNR policy of a run.
type SNRSource struct {
	Mode  SNRMode
	Fixed float64
	// PerItem draws a new value for every item instead of once per run.
	PerItem bool
}

// Resolve picks an SNR in dB. Random modes draw from rng; SNRFixed returns
// Fixed without touching rng.
func (s SNRSource) Resolve(rng Rand) float64 {
	lo, hi, ok := s.Mode.bounds()
	if !ok {
		return s.Fixed
	}

	return float64(lo + rng.IntN(hi-lo))
}

func (s SNRSource) String() string {
	switch {
	case s.Mode == SNRFixed:
		return fmt.Sprintf("fixed %g dB", s.Fixed)
	case s.PerItem:
		return s.Mode.String() + " (per item)"
	default:
		return s.Mode.String()
	}
}
