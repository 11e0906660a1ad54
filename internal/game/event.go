package game

// Event is one of the fixed set of window notifications the dispatcher handles.
type Event int

const (
	EventCreate Event = iota
	EventTick
	EventPaint
	EventClose
	EventDestroy
	EventOther
)

func (e Event) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventTick:
		return "tick"
	case EventPaint:
		return "paint"
	case EventClose:
		return "close"
	case EventDestroy:
		return "destroy"
	default:
		return "other"
	}
}
