package a

import "go.uber.org/inject/injectevent"

// LogEvent returns a value, so this is not an injectevent.Logger.
type recorder struct{ seen []injectevent.Event }

func (r *recorder) LogEvent(ev injectevent.Event) bool {
	if _, ok := ev.(*injectevent.Built); ok {
		r.seen = append(r.seen, ev)
	}
	return true
}
