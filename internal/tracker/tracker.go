package tracker

// Tracker records analytics events. Implementations never block the caller
// and never report failure.
type Tracker interface {
	Track(name string, props map[string]any)
}

// Func adapts a function to the Tracker interface
type Func func(name string, props map[string]any)

// Track calls f(name, props)
func (f Func) Track(name string, props map[string]any) {
	f(name, props)
}

// Nop discards every event
type Nop struct{}

// Track does nothing
func (Nop) Track(string, map[string]any) {}

// Multi fans every event out to each tracker in order
type Multi []Tracker

// Track forwards the event to every tracker
func (m Multi) Track(name string, props map[string]any) {
	for _, t := range m {
		if t != nil {
			t.Track(name, props)
		}
	}
}
