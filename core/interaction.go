package core

import (
	"time"

	"github.com/google/uuid"
)

// Reward is the feedback signal attached to an interaction record.
type Reward int

const (
	// RewardNegative records an explicit thumbs-down.
	RewardNegative Reward = -1
	// RewardNeutral records an answer that was delivered without any
	// feedback being solicited yet.
	RewardNeutral Reward = 0
	// RewardPositive records an explicit thumbs-up, or the implicit default
	// applied when the feedback window elapses without a signal.
	RewardPositive Reward = 1
)

// Valid reports whether the reward is one of the three defined signals.
func (r Reward) Valid() bool {
	return r >= RewardNegative && r <= RewardPositive
}

// InteractionRecord is one (state, action, reward) triple in the append-only
// interaction log. The sequence of records is the sole training corpus for
// the policy.
type InteractionRecord struct {
	// ID uniquely identifies the record.
	ID string `json:"id"`
	// State is the utterance as the user entered it.
	State string `json:"state"`
	// Action is the response text that was produced for State.
	Action string `json:"action"`
	// Reward is -1, 0 or 1. See the Reward constants.
	Reward Reward `json:"reward"`
	// Timestamp is the ISO-8601 creation time of the record.
	Timestamp string `json:"timestamp"`
}

// NewID generates a unique identifier.
func NewID() string { return uuid.NewString() }

// NewInteractionRecord builds a record with a fresh ID, stamped with the
// current time.
func NewInteractionRecord(state, action string, reward Reward) InteractionRecord {
	return InteractionRecord{
		ID:        NewID(),
		State:     state,
		Action:    action,
		Reward:    reward,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
