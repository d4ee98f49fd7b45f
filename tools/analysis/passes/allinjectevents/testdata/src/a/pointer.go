package a

import (
	"log"

	"go.uber.org/inject/injectevent"
)

type pointerLogger struct{}

func (*pointerLogger) LogEvent(ev injectevent.Event) { // want `\*pointerLogger doesn't handle \[\*Built \*Injected\]`
	if e, ok := ev.(*injectevent.Created); ok {
		log.Print(e)
	}
	if e, ok := ev.(*injectevent.Unresolved); ok {
		log.Print(e)
	}
}
