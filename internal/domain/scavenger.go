package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scavenger holds exactly one artifact and evaluates finds with a fixed policy.
// Encounters never mutate a Scavenger; they return a new value.
type Scavenger struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Policy    Policy    `json:"policy"`
	Held      Artifact  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewScavenger creates a scavenger with a fresh ID
func NewScavenger(name string, policy Policy, held Artifact) Scavenger {
	now := time.Now().UTC()
	return Scavenger{
		ID:        uuid.New(),
		Name:      name,
		Policy:    policy,
		Held:      held,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithHeld returns a copy of s holding a instead
func (s Scavenger) WithHeld(a Artifact) Scavenger {
	s.Held = a
	return s
}
