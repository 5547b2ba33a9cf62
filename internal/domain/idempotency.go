package domain

import "time"

// IdempotencyRecord stores the outcome of the first successful execution of a
// guarded operation. A second call with the same key inside the TTL window
// returns the stored result without re-executing side effects.
type IdempotencyRecord struct {
	Key         string     `json:"key"`
	Operation   string     `json:"operation"`
	Result      []byte     `json:"result,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
