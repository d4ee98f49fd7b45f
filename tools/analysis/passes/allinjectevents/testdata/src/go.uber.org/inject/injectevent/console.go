package injectevent

type consoleLogger struct{}

func (consoleLogger) LogEvent(ev Event) { // want `consoleLogger doesn't handle \[\*Unresolved\]`
	switch ev.(type) {
	case *Built:
	case *Created, *Injected:
	}
}
