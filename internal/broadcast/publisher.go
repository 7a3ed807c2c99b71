package broadcast

import "sync"

// Publisher is the capability the engine uses to fan out state-change
// notifications. Delivery is fire-and-forget: implementations must never
// block or fail the transition that triggered the publish.
type Publisher interface {
	Publish(eventID, kind string, payload any)
}

// NoopPublisher discards everything. Useful default for tests and tooling.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, string, any) {}

// Recorder captures published notifications for assertions in tests.
type Recorder struct {
	mu       sync.Mutex
	Messages []Recorded
}

// Recorded is one captured Publish call.
type Recorded struct {
	EventID string
	Kind    string
	Payload any
}

func (r *Recorder) Publish(eventID, kind string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Recorded{EventID: eventID, Kind: kind, Payload: payload})
}

// Kinds returns the captured notification kinds in publish order.
func (r *Recorder) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, len(r.Messages))
	for i, m := range r.Messages {
		kinds[i] = m.Kind
	}
	return kinds
}
