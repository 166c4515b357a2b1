package entities

import (
	"encoding/json"
	"time"
)

// AuditRecord is one append-only fact about an accepted operation.
// Body holds a JSON snapshot of the request payload; nil when the
// operation had no payload or the snapshot could not be serialized.
type AuditRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Method    string          `json:"method"`
	Path      string          `json:"path"`
	Body      json.RawMessage `json:"body,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
