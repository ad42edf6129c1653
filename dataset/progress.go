// SPDX-License-Identifier: EPL-2.0

package dataset

// Phase names a stage of a job for progress reporting.
type Phase int

const (
	PhaseScan Phase = iota
	PhaseLoadNoise
	PhaseMix
	PhaseResample
	PhaseConvert
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scanning"
	case PhaseLoadNoise:
		return "loading noise"
	case PhaseMix:
		return "mixing"
	case PhaseResample:
		return "resampling"
	case PhaseConvert:
		return "converting"
	default:
		return "unknown"
	}
}

// Progress is one progress report. Total is 0 while it is not yet known.
type Progress struct {
	Phase Phase
	Done  int
	Total int
}

// Fraction returns Done/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}

	return min(float64(p.Done)/float64(p.Total), 1)
}

// ProgressFunc receives progress reports. It may be called from several
// goroutines at once and must not block for long.
type ProgressFunc func(Progress)

func (f ProgressFunc) report(phase Phase, done, total int) {
	if f != nil {
		f(Progress{Phase: phase, Done: done, Total: total})
	}
}
