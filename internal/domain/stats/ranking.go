package stats

import (
	"math"
	"sort"
)

// ppgEpsilon guards the points-per-game comparison against rounding noise
// from integer division; two values closer than this are treated as equal.
const ppgEpsilon = 1e-2

// PlayerStanding is one leaderboard row.
type PlayerStanding struct {
	PlayerID string
	Position int
	Aggregate
}

type SortKey string

const (
	SortKeyPoints   SortKey = "points"
	SortKeyPPG      SortKey = "ppg"
	SortKeyGoalDiff SortKey = "goaldiff"
	SortKeyMVP      SortKey = "mvp"
	SortKeyGames    SortKey = "games"
	SortKeyWinRate  SortKey = "winrate"
)

var allSortKeys = map[SortKey]struct{}{
	SortKeyPoints:   {},
	SortKeyPPG:      {},
	SortKeyGoalDiff: {},
	SortKeyMVP:      {},
	SortKeyGames:    {},
	SortKeyWinRate:  {},
}

func ParseSortKey(value string) (SortKey, bool) {
	key := SortKey(value)
	if _, ok := allSortKeys[key]; ok {
		return key, true
	}
	return "", false
}

// Rank orders standings descending by points, then points per game
// (epsilon comparison), then goal difference. The sort is stable, so rows
// tied on all three keys keep their input order. Positions are assigned
// 1-based afterwards; fully tied rows share a position.
func Rank(rows []PlayerStanding) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points() != rows[j].Points() {
			return rows[i].Points() > rows[j].Points()
		}
		if diff := rows[i].PointsPerGame() - rows[j].PointsPerGame(); math.Abs(diff) > ppgEpsilon {
			return diff > 0
		}
		return rows[i].GoalDifference > rows[j].GoalDifference
	})

	position := 0
	for idx := range rows {
		if idx == 0 || !tied(rows[idx-1], rows[idx]) {
			position = idx + 1
		}
		rows[idx].Position = position
	}
}

func tied(a, b PlayerStanding) bool {
	return a.Points() == b.Points() &&
		math.Abs(a.PointsPerGame()-b.PointsPerGame()) <= ppgEpsilon &&
		a.GoalDifference == b.GoalDifference
}

// SortBy resorts standings on a single key with no fallback tie-break; rows
// equal on the key keep their current order. Positions are not reassigned,
// they still reflect the canonical ranking.
func SortBy(rows []PlayerStanding, key SortKey, descending bool) {
	value := func(row PlayerStanding) float64 {
		switch key {
		case SortKeyPPG:
			return row.PointsPerGame()
		case SortKeyGoalDiff:
			return float64(row.GoalDifference)
		case SortKeyMVP:
			return float64(row.MVPAwards)
		case SortKeyGames:
			return float64(row.GamesPlayed())
		case SortKeyWinRate:
			return row.WinRate()
		default:
			return float64(row.Points())
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return value(rows[i]) > value(rows[j])
		}
		return value(rows[i]) < value(rows[j])
	})
}
