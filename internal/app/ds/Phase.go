package ds

import "fmt"

// Phase состояние анализа: Idle -> Loading -> Done -> (reset) -> Idle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*p = PhaseIdle
	case "loading":
		*p = PhaseLoading
	case "done":
		*p = PhaseDone
	default:
		return fmt.Errorf("unknown phase %q", b)
	}
	return nil
}
