package match

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyTeam        = errors.New("match team cannot be empty")
	ErrOverlappingTeams = errors.New("player cannot appear in both teams")
	ErrDuplicatePlayer  = errors.New("duplicate player within a team")
	ErrNegativeGoals    = errors.New("goals cannot be negative")
	ErrUnknownMVP       = errors.New("mvp player is not part of either team")
)

// Record is one completed game in the append-only match log.
type Record struct {
	ID        string
	TeamA     []string
	TeamB     []string
	GoalsA    int
	GoalsB    int
	MVPPlayer string
	PlayedAt  time.Time
}

// Outcome is a single match result from one player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
	OutcomeLoss Outcome = "loss"
)

func (r Record) Contains(playerID string) bool {
	return containsPlayer(r.TeamA, playerID) || containsPlayer(r.TeamB, playerID)
}

// OutcomeFor reports the match result for playerID. The second return is
// false when the player took part in neither team.
func (r Record) OutcomeFor(playerID string) (Outcome, bool) {
	inA := containsPlayer(r.TeamA, playerID)
	inB := containsPlayer(r.TeamB, playerID)
	if !inA && !inB {
		return "", false
	}

	switch {
	case r.GoalsA == r.GoalsB:
		return OutcomeDraw, true
	case inA == (r.GoalsA > r.GoalsB):
		return OutcomeWin, true
	default:
		return OutcomeLoss, true
	}
}

// Validate enforces the match-log invariants at the ingestion boundary.
// Downstream aggregation trusts records that passed this check.
func (r Record) Validate() error {
	if len(r.TeamA) == 0 || len(r.TeamB) == 0 {
		return ErrEmptyTeam
	}
	if r.GoalsA < 0 || r.GoalsB < 0 {
		return ErrNegativeGoals
	}

	seenA := make(map[string]struct{}, len(r.TeamA))
	for _, playerID := range r.TeamA {
		if playerID == "" {
			return fmt.Errorf("%w: team A", ErrEmptyTeam)
		}
		if _, dup := seenA[playerID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, playerID)
		}
		seenA[playerID] = struct{}{}
	}
	for _, playerID := range r.TeamB {
		if playerID == "" {
			return fmt.Errorf("%w: team B", ErrEmptyTeam)
		}
		if _, overlap := seenA[playerID]; overlap {
			return fmt.Errorf("%w: %s", ErrOverlappingTeams, playerID)
		}
	}
	seenB := make(map[string]struct{}, len(r.TeamB))
	for _, playerID := range r.TeamB {
		if _, dup := seenB[playerID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, playerID)
		}
		seenB[playerID] = struct{}{}
	}

	if r.MVPPlayer != "" && !r.Contains(r.MVPPlayer) {
		return fmt.Errorf("%w: %s", ErrUnknownMVP, r.MVPPlayer)
	}

	return nil
}

func containsPlayer(team []string, playerID string) bool {
	for _, id := range team {
		if id == playerID {
			return true
		}
	}
	return false
}
