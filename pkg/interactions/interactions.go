package interactions

import (
	"context"
	"time"

	"github.com/segmentio/ksuid"
)

// TimeFormat matches the microsecond local timestamps already present in
// existing log files.
const TimeFormat = "2006-01-02T15:04:05.000000"

// Interaction is one question and the answer sent back for it.
type Interaction struct {
	ID        string `json:"-" bson:"_id,omitempty"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
	Question  string `json:"question" bson:"question"`
	Answer    string `json:"answer" bson:"answer"`
}

// New stamps a record with the current local time.
func New(question, answer string) Interaction {
	return Interaction{
		ID:        ksuid.New().String(),
		Timestamp: time.Now().Format(TimeFormat),
		Question:  question,
		Answer:    answer,
	}
}

// Store is an append-only interaction log.
type Store interface {
	Append(ctx context.Context, rec Interaction) error
	List(ctx context.Context) ([]Interaction, error)
	Close(ctx context.Context) error
}
