package a

import (
	"fmt"

	"go.uber.org/inject/injectevent"
)

type completeLogger struct{}

func (*completeLogger) LogEvent(ev injectevent.Event) {
	switch e := ev.(type) {
	case *injectevent.Built, *injectevent.Created:
		fmt.Println(e)
	case *injectevent.Injected:
		fmt.Println(e)
	case *injectevent.Unresolved:
		fmt.Println(e)
	}
}
