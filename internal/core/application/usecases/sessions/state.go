package sessions

// State is the lifecycle stage of a streaming session.
//
//	Connecting ──> Streaming ──> Closed
//	     └─────────────────────────^
type State int

const (
	Connecting State = iota
	Streaming
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Streaming:
		return "streaming"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
