package badge

import (
	"testing"

	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/profile"
	"sunday-league/internal/domain/stats"
)

func badgeNames(badges []Badge) []string {
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Name)
	}
	return names
}

func hasBadge(badges []Badge, name string) bool {
	for _, b := range badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

func TestEvaluate_DominatorNotChampion(t *testing.T) {
	t.Parallel()

	// 10 wins in 12 games is roughly an 83% win rate: the strictest
	// qualifying tier wins and the lower tiers stay silent.
	got := Evaluate(Input{Stats: stats.Aggregate{Wins: 10, Draws: 0, Losses: 2}})

	if !hasBadge(got, "Dominator") {
		t.Fatalf("expected Dominator in %v", badgeNames(got))
	}
	if hasBadge(got, "Champion") || hasBadge(got, "Winner") {
		t.Fatalf("lower win-rate tiers must not co-fire: %v", badgeNames(got))
	}
}

func TestEvaluate_WinRateGateAtTenGames(t *testing.T) {
	t.Parallel()

	// Perfect record but only 9 games: the win-rate group must not apply.
	got := Evaluate(Input{Stats: stats.Aggregate{Wins: 9}})

	if hasBadge(got, "Dominator") {
		t.Fatalf("win-rate badges need ten games, got %v", badgeNames(got))
	}
}

func TestEvaluate_OneBadgePerTierGroup(t *testing.T) {
	t.Parallel()

	got := Evaluate(Input{Stats: stats.Aggregate{MVPAwards: 12}})

	if !hasBadge(got, "Legend") {
		t.Fatalf("expected Legend in %v", badgeNames(got))
	}
	if hasBadge(got, "MVP Champion") {
		t.Fatalf("Legend supersedes MVP Champion: %v", badgeNames(got))
	}
}

func TestEvaluate_NegativeGoalDifferenceTiers(t *testing.T) {
	t.Parallel()

	got := Evaluate(Input{Stats: stats.Aggregate{Losses: 4, GoalDifference: -16}})

	if !hasBadge(got, "Black Hole") {
		t.Fatalf("expected Black Hole in %v", badgeNames(got))
	}
	if hasBadge(got, "Goal Leaker") {
		t.Fatalf("only the worst tier fires: %v", badgeNames(got))
	}
}

func TestEvaluate_ProfileRules(t *testing.T) {
	t.Parallel()

	p := &profile.Profile{
		PlayerID: "p1",
		Skills: profile.SkillRatings{
			Pace: 93, Shooting: 88, Passing: 85,
			Dribbling: 90, Defending: 70, Physical: 80,
		},
		SignatureMoves: []string{"Rainbow Flick", "slow jog"},
	}

	got := Evaluate(Input{Profile: p})

	if !hasBadge(got, "Speed Demon") || !hasBadge(got, "Magician") {
		t.Fatalf("per-skill rules at 90+ missing: %v", badgeNames(got))
	}
	if hasBadge(got, "Sniper") {
		t.Fatalf("shooting 88 must not award Sniper: %v", badgeNames(got))
	}
	if !hasBadge(got, "Showboat") {
		t.Fatalf("case-insensitive move match failed: %v", badgeNames(got))
	}
	if !hasBadge(got, "Skilled") {
		t.Fatalf("average skill 84.3 must award Skilled: %v", badgeNames(got))
	}
}

func TestEvaluate_SwissArmyKnife(t *testing.T) {
	t.Parallel()

	p := &profile.Profile{
		PlayerID:       "p1",
		SignatureMoves: []string{"a", "b", "c", "d", "e"},
	}

	got := Evaluate(Input{Profile: p})

	if !hasBadge(got, "Swiss Army Knife") {
		t.Fatalf("five moves must award Swiss Army Knife: %v", badgeNames(got))
	}
}

func TestEvaluate_MissingOptionalInputs(t *testing.T) {
	t.Parallel()

	got := Evaluate(Input{})
	if got == nil {
		t.Fatalf("result must never be nil")
	}
	for _, b := range got {
		switch b.Name {
		case "Speed Demon", "Sniper", "Wall", "Magician", "Playmaker", "Beast",
			"Showboat", "Acrobat", "Humiliator", "Artist", "Swiss Army Knife",
			"Maestro", "Skilled", "On Fire", "Stormy Weather":
			t.Fatalf("profile/recent badge %q awarded without its input", b.Name)
		}
	}
}

func TestEvaluate_RecentForm(t *testing.T) {
	t.Parallel()

	hot := []match.Outcome{
		match.OutcomeWin, match.OutcomeWin, match.OutcomeWin,
		match.OutcomeWin, match.OutcomeWin, match.OutcomeLoss,
	}
	got := Evaluate(Input{Recent: hot})
	if !hasBadge(got, "On Fire") {
		t.Fatalf("five recent wins must award On Fire: %v", badgeNames(got))
	}

	cold := []match.Outcome{
		match.OutcomeLoss, match.OutcomeLoss, match.OutcomeDraw,
		match.OutcomeLoss, match.OutcomeLoss,
	}
	got = Evaluate(Input{Recent: cold})
	if !hasBadge(got, "Stormy Weather") {
		t.Fatalf("winless recent run must award Stormy Weather: %v", badgeNames(got))
	}

	tooFew := []match.Outcome{match.OutcomeWin, match.OutcomeWin, match.OutcomeWin, match.OutcomeWin}
	got = Evaluate(Input{Recent: tooFew})
	if hasBadge(got, "On Fire") || hasBadge(got, "Stormy Weather") {
		t.Fatalf("fewer than five recent results must skip form badges: %v", badgeNames(got))
	}
}

func TestEvaluate_SpecialRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   stats.Aggregate
		want string
	}{
		{"fresh meat", stats.Aggregate{Wins: 1}, "Fresh Meat"},
		{"trying hard", stats.Aggregate{Draws: 2, Losses: 3}, "Trying Hard"},
		{"unstoppable", stats.Aggregate{Wins: 3}, "Unstoppable"},
		{"chaos agent", stats.Aggregate{Wins: 2, Draws: 2, Losses: 2}, "Chaos Agent"},
		{"drama queen", stats.Aggregate{Wins: 1, Draws: 4, Losses: 1}, "Drama Queen"},
		{"hero of lost causes", stats.Aggregate{Wins: 1, Losses: 4, MVPAwards: 3}, "Hero of Lost Causes"},
		{"participation trophy", stats.Aggregate{Losses: 15}, "Participation Trophy"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Evaluate(Input{Stats: tc.in})
			if !hasBadge(got, tc.want) {
				t.Fatalf("expected %q in %v", tc.want, badgeNames(got))
			}
		})
	}
}

func TestEvaluate_DeterministicOrder(t *testing.T) {
	t.Parallel()

	in := Input{
		Stats: stats.Aggregate{Wins: 12, Draws: 5, Losses: 3, MVPAwards: 6, GoalDifference: 26},
	}

	first := Evaluate(in)
	second := Evaluate(in)

	if len(first) != len(second) {
		t.Fatalf("repeat evaluation changed badge count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("badge order changed at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestIconLookupCoversEveryRule(t *testing.T) {
	t.Parallel()

	check := func(name string) {
		t.Helper()
		if _, ok := iconByName[name]; !ok {
			t.Fatalf("badge %q has no icon", name)
		}
	}

	for _, group := range tierGroups {
		for _, tr := range group.tiers {
			check(tr.name)
		}
	}
	for _, rule := range perSkillRules {
		check(rule.name)
	}
	for _, rule := range moveRules {
		check(rule.name)
	}
	for _, rule := range specialRules {
		check(rule.name)
	}
	check("Swiss Army Knife")
	check("On Fire")
	check("Stormy Weather")
}
