package distribution

// Phase is a state of the per-cycle state machine:
//
//	Idle → Planning → Selecting → (PacingDelay → Sending → Recording)* → Finalizing → Idle
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlanning
	PhaseSelecting
	PhasePacingDelay
	PhaseSending
	PhaseRecording
	PhaseFinalizing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlanning:
		return "planning"
	case PhaseSelecting:
		return "selecting"
	case PhasePacingDelay:
		return "pacing_delay"
	case PhaseSending:
		return "sending"
	case PhaseRecording:
		return "recording"
	case PhaseFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}
