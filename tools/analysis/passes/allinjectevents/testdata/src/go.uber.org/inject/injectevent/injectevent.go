package injectevent

// A trimmed injectevent package with a fixed set of events.

type (
	Logger     interface{ LogEvent(Event) }
	Event      interface{ event() }
	Built      struct{}
	Created    struct{}
	Injected   struct{}
	Unresolved struct{}
)

func (*Built) event()      {}
func (*Created) event()    {}
func (*Injected) event()   {}
func (*Unresolved) event() {}
