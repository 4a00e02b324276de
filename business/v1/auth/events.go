package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ribgsilva/private-notes/sys"
	"gocloud.dev/pubsub"
)

type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event is a change of the session identified by SessionID
type Event struct {
	Type      EventType `json:"type" example:"signed_out"`
	SessionID string    `json:"session_id"`
	User      User      `json:"user"`
	At        time.Time `json:"at"`
}

// State is the auth state after the event
func (e Event) State() State {
	if e.Type == EventSignedOut {
		return State{Status: StatusResolved}
	}
	u := e.User
	return State{Status: StatusResolved, User: &u}
}

// publish sends the event to the topic, delivery is best effort
func publish(ctx context.Context, t EventType, s Session) {
	topic := sys.R.Events
	if topic == nil {
		return
	}

	body, err := json.Marshal(Event{Type: t, SessionID: s.ID, User: s.User, At: now().UTC()})
	if err != nil {
		sys.R.Log.Error("failure to encode session event: ", err)
		return
	}
	if err := topic.Send(ctx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{"type": string(t)},
	}); err != nil {
		sys.R.Log.Error("failure to publish session event ", t, ": ", err)
	}
}

// Dispatch hands an event received from the topic to the subscribers of its session
func Dispatch(body []byte) (int, error) {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return 0, fmt.Errorf("failed to parse session event: %w", err)
	}
	if e.SessionID == "" {
		return 0, fmt.Errorf("session event %q without session", e.Type)
	}
	return sys.R.Broker.Publish(e.SessionID, body), nil
}

// Subscribe streams the events of the session. The returned func ends the
// subscription and must be called once the caller stops reading.
// Events published before the subscription are skipped, except signed_out.
func Subscribe(sessionID string) (<-chan Event, func()) {
	since := now()
	raw, cancel := sys.R.Broker.Subscribe(sessionID)
	out := make(chan Event)
	done := make(chan struct{})

	go func() {
		defer close(out)
		for body := range raw {
			var e Event
			if err := json.Unmarshal(body, &e); err != nil {
				sys.R.Log.Error("failure to parse session event: ", err)
				continue
			}
			if e.Type != EventSignedOut && e.At.Before(since) {
				continue
			}
			select {
			case out <- e:
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return out, func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}
}
