package a

import (
	"fmt"
	"io"

	"go.uber.org/inject/injectevent"
)

type writerLogger struct{ W io.Writer }

func (l writerLogger) LogEvent(ev injectevent.Event) { // want `writerLogger doesn't handle \[\*Created \*Unresolved\]`
	switch ev.(type) {
	case *injectevent.Built:
		fmt.Fprintln(l.W, "built")
	case *injectevent.Injected:
		fmt.Fprintln(l.W, "injected")
	}
}
