package game

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownPitchSize = errors.New("unknown pitch size")

type PitchSize string

const (
	PitchSmall PitchSize = "small"
	PitchBig   PitchSize = "big"
)

const (
	capacitySmall = 12
	capacityBig   = 14
)

// ScheduledGame is one upcoming or past pitch booking.
type ScheduledGame struct {
	ID          string
	ScheduledAt time.Time
	PitchSize   PitchSize
	Location    string
}

// Capacity is the number of paid signup slots. An unset pitch size falls
// back to the big-pitch bucket.
func (g ScheduledGame) Capacity() int {
	if g.PitchSize == PitchSmall {
		return capacitySmall
	}
	return capacityBig
}

func (g ScheduledGame) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.ScheduledAt.IsZero() {
		return fmt.Errorf("game schedule time is required")
	}
	if g.PitchSize != "" && g.PitchSize != PitchSmall && g.PitchSize != PitchBig {
		return fmt.Errorf("%w: %s", ErrUnknownPitchSize, g.PitchSize)
	}
	return nil
}

// Signup associates a participant (player or guest) with a scheduled game.
// Arrival order by SignedUpAt establishes the 1-based position used for
// cost allocation.
type Signup struct {
	ID                string
	GameID            string
	ParticipantID     string
	SignedUpAt        time.Time
	LastMinuteDropout bool
}
