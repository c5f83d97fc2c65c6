package game

import "sort"

// TotalGameCost is the fixed pitch rent per game, split across the paid
// signup slots.
const TotalGameCost = 93.60

func (g ScheduledGame) CostPerSlot() float64 {
	return TotalGameCost / float64(g.Capacity())
}

// SignupsByPosition returns the signups for gameID ordered by SignedUpAt
// ascending. The sort is stable, so signups sharing a timestamp keep their
// input order. Index i holds position i+1.
func SignupsByPosition(signups []Signup, gameID string) []Signup {
	out := make([]Signup, 0, len(signups))
	for _, item := range signups {
		if item.GameID == gameID {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SignedUpAt.Before(out[j].SignedUpAt)
	})
	return out
}

// Owes reports whether a signup at the given 1-based position pays a share.
// A last-minute dropout owes regardless of position.
func Owes(position, capacity int, lastMinuteDropout bool) bool {
	return lastMinuteDropout || position <= capacity
}

// DebtFor computes the participant's total pitch-cost debt across all
// games. Pure function over the supplied snapshots; presentation rounding
// is the caller's concern.
func DebtFor(participantID string, games []ScheduledGame, signups []Signup) float64 {
	if participantID == "" {
		return 0
	}

	total := 0.0
	for _, g := range games {
		ordered := SignupsByPosition(signups, g.ID)
		for idx, item := range ordered {
			if item.ParticipantID != participantID {
				continue
			}
			if Owes(idx+1, g.Capacity(), item.LastMinuteDropout) {
				total += g.CostPerSlot()
			}
			break
		}
	}
	return total
}
