package a

import "go.uber.org/inject/injectevent"

// Handles nothing, so it is left alone.
type discardLogger struct{}

func (discardLogger) LogEvent(injectevent.Event) {}
