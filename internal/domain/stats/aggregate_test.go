package stats

import (
	"testing"
	"time"

	"sunday-league/internal/domain/match"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestAggregateMatches_SingleMatch(t *testing.T) {
	t.Parallel()

	matches := []match.Record{
		{
			ID:        "m1",
			TeamA:     []string{"p1", "p2"},
			TeamB:     []string{"p3"},
			GoalsA:    3,
			GoalsB:    1,
			MVPPlayer: "p1",
		},
	}

	got := AggregateMatches(matches, nil)

	p1 := got["p1"]
	if p1.Wins != 1 || p1.GoalDifference != 2 || p1.MVPAwards != 1 {
		t.Fatalf("unexpected p1 aggregate: %+v", p1)
	}
	p2 := got["p2"]
	if p2.Wins != 1 || p2.GoalDifference != 2 || p2.MVPAwards != 0 {
		t.Fatalf("unexpected p2 aggregate: %+v", p2)
	}
	p3 := got["p3"]
	if p3.Losses != 1 || p3.GoalDifference != -2 {
		t.Fatalf("unexpected p3 aggregate: %+v", p3)
	}
}

func TestAggregateMatches_Idempotent(t *testing.T) {
	t.Parallel()

	matches := []match.Record{
		{ID: "m1", TeamA: []string{"p1"}, TeamB: []string{"p2"}, GoalsA: 2, GoalsB: 2, PlayedAt: mustTime(t, "2026-03-01T10:00:00Z")},
		{ID: "m2", TeamA: []string{"p2"}, TeamB: []string{"p1"}, GoalsA: 1, GoalsB: 0, PlayedAt: mustTime(t, "2026-03-08T10:00:00Z")},
	}

	first := AggregateMatches(matches, nil)
	second := AggregateMatches(matches, nil)

	for id, agg := range first {
		if second[id] != agg {
			t.Fatalf("aggregation is not deterministic for %s: %+v vs %+v", id, agg, second[id])
		}
	}
}

func TestAggregateMatches_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := match.Record{ID: "m1", TeamA: []string{"p1"}, TeamB: []string{"p2"}, GoalsA: 4, GoalsB: 0}
	b := match.Record{ID: "m2", TeamA: []string{"p2"}, TeamB: []string{"p1"}, GoalsA: 3, GoalsB: 1}

	forward := AggregateMatches([]match.Record{a, b}, nil)
	reversed := AggregateMatches([]match.Record{b, a}, nil)

	for _, id := range []string{"p1", "p2"} {
		if forward[id] != reversed[id] {
			t.Fatalf("order changed aggregate for %s: %+v vs %+v", id, forward[id], reversed[id])
		}
	}
}

func TestAggregateMatches_DeclaredPlayerWithoutMatches(t *testing.T) {
	t.Parallel()

	got := AggregateMatches(nil, []string{"bench-warmer"})

	agg, ok := got["bench-warmer"]
	if !ok {
		t.Fatalf("declared player missing from result")
	}
	if agg != (Aggregate{}) {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
	if agg.PointsPerGame() != 0 || agg.WinRate() != 0 {
		t.Fatalf("ratio helpers must guard zero games")
	}
}

func TestAggregateMatches_MVPOutsideTeamsIgnored(t *testing.T) {
	t.Parallel()

	matches := []match.Record{
		{ID: "m1", TeamA: []string{"p1"}, TeamB: []string{"p2"}, GoalsA: 1, GoalsB: 0, MVPPlayer: "ghost"},
	}

	got := AggregateMatches(matches, nil)

	if _, ok := got["ghost"]; ok {
		t.Fatalf("mvp outside both teams must not create an aggregate")
	}
	for id, agg := range got {
		if agg.MVPAwards != 0 {
			t.Fatalf("no award expected, %s got %d", id, agg.MVPAwards)
		}
	}
}

func TestAggregatePoints(t *testing.T) {
	t.Parallel()

	agg := Aggregate{Wins: 4, Draws: 3, Losses: 2, MVPAwards: 6}
	if got := agg.Points(); got != 15 {
		t.Fatalf("points must be wins*3 + draws, got %d", got)
	}
	if got := agg.GamesPlayed(); got != 9 {
		t.Fatalf("unexpected games played: %d", got)
	}
}
