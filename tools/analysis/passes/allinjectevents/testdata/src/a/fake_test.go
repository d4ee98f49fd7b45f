package a

import "go.uber.org/inject/injectevent"

// Partial, but test files are not checked.
type fakeLogger struct{ built int }

func (f *fakeLogger) LogEvent(ev injectevent.Event) {
	if _, ok := ev.(*injectevent.Built); ok {
		f.built++
	}
}
