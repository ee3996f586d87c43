package draft

import (
	"encoding/json"
	"time"
)

type Kind string

const (
	KindEmployee Kind = "employee"
	KindProject  Kind = "project"
)

func (k Kind) Valid() bool {
	return k == KindEmployee || k == KindProject
}

// State is the per-session editing lifecycle. There is no explicit Closed
// state; closing a session deletes it from the store.
type State string

const (
	StateViewing    State = "Viewing"
	StateEditing    State = "Editing"
	StateSubmitting State = "Submitting"
)

// Session holds one in-progress edit. Canonical is the last server-confirmed
// record the draft was seeded from (nil when creating), Draft is the local
// working copy. LastError carries the server message from a failed submit.
type Session struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	State     State           `json:"state"`
	EntityID  string          `json:"entityId,omitempty"`
	Canonical json.RawMessage `json:"canonical,omitempty"`
	Draft     json.RawMessage `json:"draft,omitempty"`
	LastError string          `json:"lastError,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
