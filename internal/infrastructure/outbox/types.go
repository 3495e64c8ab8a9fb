package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const KindInvite = "invite"

// Item is a queued notification awaiting delivery. Items survive restarts so
// an invite never silently vanishes when the process dies between the
// membership write and the notification send.
type Item struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Kind == "" {
		i.Kind = KindInvite
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
