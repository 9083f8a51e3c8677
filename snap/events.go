package snap

// EventType identifies what changed in the machine.
type EventType int

const (
	EventInit EventType = iota
	EventDragRecorded
	EventSnapped
	EventCornerSet
	EventDriftCorrected
)

func (t EventType) String() string {
	switch t {
	case EventInit:
		return "init"
	case EventDragRecorded:
		return "drag"
	case EventSnapped:
		return "snapped"
	case EventCornerSet:
		return "corner"
	case EventDriftCorrected:
		return "drift"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every state change.
type Event struct {
	Type  EventType
	State State
}

// Unsubscribe removes a subscription. It is safe to call more than once.
type Unsubscribe func()

type subscriber struct {
	id     uint64
	fn     func(Event)
	active bool
}

type subscribers struct {
	next uint64
	list []*subscriber
}

func (s *subscribers) add(fn func(Event)) Unsubscribe {
	s.next++
	sub := &subscriber{id: s.next, fn: fn, active: true}
	s.list = append(s.list, sub)
	return func() { sub.active = false }
}

// emit calls active subscribers in registration order and drops inactive ones.
func (s *subscribers) emit(ev Event) {
	active := s.list[:0]
	for _, sub := range s.list {
		if sub.active {
			active = append(active, sub)
		}
	}
	s.list = active
	for _, sub := range append([]*subscriber(nil), active...) {
		if sub.active {
			sub.fn(ev)
		}
	}
}
