package app

// Bus is a named-event publish/subscribe hub. Handlers run synchronously in
// subscription order on the caller's goroutine.
type Bus struct {
	nextID   int
	handlers map[string][]busHandler
}

type busHandler struct {
	id int
	fn func()
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]busHandler)}
}

// Subscribe registers fn for name and returns a function that removes it.
func (b *Bus) Subscribe(name string, fn func()) func() {
	b.nextID++
	id := b.nextID
	b.handlers[name] = append(b.handlers[name], busHandler{id: id, fn: fn})
	return func() {
		hs := b.handlers[name]
		for i, h := range hs {
			if h.id == id {
				b.handlers[name] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every handler subscribed to name.
func (b *Bus) Emit(name string) {
	hs := append([]busHandler(nil), b.handlers[name]...)
	for _, h := range hs {
		h.fn()
	}
}
