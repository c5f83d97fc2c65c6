package stats

import "sunday-league/internal/domain/match"

// Aggregate holds one player's cumulative statistics over the full match
// log. It is always derived, never stored.
type Aggregate struct {
	Wins           int
	Draws          int
	Losses         int
	MVPAwards      int
	GoalDifference int
}

func (a Aggregate) GamesPlayed() int {
	return a.Wins + a.Draws + a.Losses
}

// Points is the canonical league score: three for a win, one for a draw.
// MVP awards are tracked separately and never folded into points.
func (a Aggregate) Points() int {
	return a.Wins*3 + a.Draws
}

func (a Aggregate) PointsPerGame() float64 {
	games := a.GamesPlayed()
	if games == 0 {
		return 0
	}
	return float64(a.Points()) / float64(games)
}

// WinRate is a percentage in [0, 100].
func (a Aggregate) WinRate() float64 {
	games := a.GamesPlayed()
	if games == 0 {
		return 0
	}
	return float64(a.Wins) / float64(games) * 100
}

// AggregateMatches folds the match log into one Aggregate per player. The
// reported set is the union of playerIDs and every id appearing in the log;
// declared players with no matches get a zero aggregate. The fold is a pure
// single pass and independent of match order.
func AggregateMatches(matches []match.Record, playerIDs []string) map[string]Aggregate {
	out := make(map[string]Aggregate, len(playerIDs))
	for _, playerID := range playerIDs {
		if playerID == "" {
			continue
		}
		if _, exists := out[playerID]; !exists {
			out[playerID] = Aggregate{}
		}
	}

	for _, record := range matches {
		applyTeam(out, record.TeamA, record.GoalsA, record.GoalsB)
		applyTeam(out, record.TeamB, record.GoalsB, record.GoalsA)

		if record.MVPPlayer != "" && record.Contains(record.MVPPlayer) {
			agg := out[record.MVPPlayer]
			agg.MVPAwards++
			out[record.MVPPlayer] = agg
		}
	}

	return out
}

func applyTeam(out map[string]Aggregate, team []string, goalsFor, goalsAgainst int) {
	for _, playerID := range team {
		if playerID == "" {
			continue
		}

		agg := out[playerID]
		switch {
		case goalsFor > goalsAgainst:
			agg.Wins++
		case goalsFor < goalsAgainst:
			agg.Losses++
		default:
			agg.Draws++
		}
		agg.GoalDifference += goalsFor - goalsAgainst
		out[playerID] = agg
	}
}
