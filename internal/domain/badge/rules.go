package badge

import (
	"strings"

	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/profile"
	"sunday-league/internal/domain/stats"
)

const (
	// RecentWindow is how many of the player's latest results feed the
	// form rules; fewer than recentMinResults skips them entirely.
	RecentWindow     = 6
	recentMinResults = 5
)

// Input is everything badge evaluation may look at. Profile and Recent are
// optional; rules needing them are skipped when they are absent.
type Input struct {
	Stats   stats.Aggregate
	Profile *profile.Profile
	Recent  []match.Outcome
}

type tier struct {
	threshold   float64
	name        string
	description string
}

// tierGroup awards at most one badge: tiers are ordered strictest first and
// the first qualifying tier wins. metric returns ok=false when the group
// does not apply to this input at all.
type tierGroup struct {
	metric func(Input) (float64, bool)
	tiers  []tier
}

var tierGroups = []tierGroup{
	{
		metric: func(in Input) (float64, bool) { return float64(in.Stats.MVPAwards), true },
		tiers: []tier{
			{10, "Legend", "Ten or more MVP awards"},
			{5, "MVP Champion", "Five or more MVP awards"},
		},
	},
	{
		metric: func(in Input) (float64, bool) { return float64(in.Stats.GoalDifference), true },
		tiers: []tier{
			{25, "Goal God", "Goal difference of +25 or better"},
			{15, "Goal Machine", "Goal difference of +15 or better"},
			{10, "Sharp Shooter", "Goal difference of +10 or better"},
		},
	},
	{
		metric: func(in Input) (float64, bool) {
			if in.Stats.GamesPlayed() < 10 {
				return 0, false
			}
			return in.Stats.WinRate(), true
		},
		tiers: []tier{
			{80, "Dominator", "Win rate of 80% or higher over 10+ games"},
			{70, "Champion", "Win rate of 70% or higher over 10+ games"},
			{60, "Winner", "Win rate of 60% or higher over 10+ games"},
		},
	},
	{
		metric: func(in Input) (float64, bool) { return float64(in.Stats.GamesPlayed()), true },
		tiers: []tier{
			{50, "Hall of Famer", "Fifty or more games played"},
			{30, "Warrior", "Thirty or more games played"},
			{20, "Veteran", "Twenty or more games played"},
		},
	},
	{
		metric: func(in Input) (float64, bool) {
			if in.Stats.GamesPlayed() < 10 {
				return 0, false
			}
			return in.Stats.PointsPerGame(), true
		},
		tiers: []tier{
			{2.2, "Elite Performer", "Averaging 2.2+ points per game over 10+ games"},
			{1.8, "Consistent", "Averaging 1.8+ points per game over 10+ games"},
		},
	},
	{
		metric: func(in Input) (float64, bool) { return float64(-in.Stats.GoalDifference), true },
		tiers: []tier{
			{15, "Black Hole", "Goal difference of -15 or worse"},
			{10, "Goal Leaker", "Goal difference of -10 or worse"},
		},
	},
	{
		metric: func(in Input) (float64, bool) { return float64(in.Stats.Draws), true },
		tiers: []tier{
			{8, "Diplomat", "Eight or more draws"},
			{5, "Peacekeeper", "Five or more draws"},
		},
	},
	{
		metric: func(in Input) (float64, bool) { return float64(in.Stats.Losses), true },
		tiers: []tier{
			{15, "Cursed", "Fifteen or more losses"},
			{10, "Unlucky", "Ten or more losses"},
		},
	},
	{
		metric: func(in Input) (float64, bool) {
			if in.Profile == nil {
				return 0, false
			}
			return in.Profile.Skills.Average(), true
		},
		tiers: []tier{
			{85, "Maestro", "Average skill rating of 85 or higher"},
			{75, "Skilled", "Average skill rating of 75 or higher"},
		},
	},
}

const perSkillThreshold = 90

type perSkillRule struct {
	rating      func(profile.SkillRatings) int
	name        string
	description string
}

// Each per-skill rule fires independently at rating >= 90.
var perSkillRules = []perSkillRule{
	{func(s profile.SkillRatings) int { return s.Pace }, "Speed Demon", "Pace rated 90 or higher"},
	{func(s profile.SkillRatings) int { return s.Shooting }, "Sniper", "Shooting rated 90 or higher"},
	{func(s profile.SkillRatings) int { return s.Defending }, "Wall", "Defending rated 90 or higher"},
	{func(s profile.SkillRatings) int { return s.Dribbling }, "Magician", "Dribbling rated 90 or higher"},
	{func(s profile.SkillRatings) int { return s.Passing }, "Playmaker", "Passing rated 90 or higher"},
	{func(s profile.SkillRatings) int { return s.Physical }, "Beast", "Physical rated 90 or higher"},
}

type moveRule struct {
	moves       []string
	name        string
	description string
}

var moveRules = []moveRule{
	{[]string{"rainbow flick", "elastico"}, "Showboat", "Signature flair move on record"},
	{[]string{"bicycle kick", "overhead kick"}, "Acrobat", "Airborne finishing on record"},
	{[]string{"nutmeg", "panna"}, "Humiliator", "Known to play it through the legs"},
	{[]string{"rabona", "trivela"}, "Artist", "Delivers with the outside of the boot"},
}

const swissArmyKnifeMoves = 5

type specialRule struct {
	name        string
	description string
	applies     func(Input) bool
}

// Special badges fire independently, in table order, one condition each.
var specialRules = []specialRule{
	{"Trying Hard", "Five or more games without a single win", func(in Input) bool {
		return in.Stats.WinRate() == 0 && in.Stats.GamesPlayed() >= 5
	}},
	{"Team Player", "Ten or more games, never chasing the MVP vote", func(in Input) bool {
		return in.Stats.MVPAwards == 0 && in.Stats.GamesPlayed() >= 10
	}},
	{"Unstoppable", "A perfect record over at least three games", func(in Input) bool {
		return in.Stats.WinRate() == 100 && in.Stats.GamesPlayed() >= 3
	}},
	{"Balanced", "Dead-even goal difference after five or more games", func(in Input) bool {
		return in.Stats.GoalDifference == 0 && in.Stats.GamesPlayed() >= 5
	}},
	{"Fresh Meat", "Exactly one game played", func(in Input) bool {
		return in.Stats.GamesPlayed() == 1
	}},
	{"Chaos Agent", "Identical win, draw and loss counts, at least two each", func(in Input) bool {
		return in.Stats.Wins == in.Stats.Draws && in.Stats.Draws == in.Stats.Losses && in.Stats.Wins >= 2
	}},
	{"Participation Trophy", "Fifteen or more games without a single point", func(in Input) bool {
		return in.Stats.GamesPlayed() >= 15 && in.Stats.Points() == 0
	}},
	{"Drama Queen", "More draws than decisive results, three draws minimum", func(in Input) bool {
		return in.Stats.Draws > in.Stats.Wins+in.Stats.Losses && in.Stats.Draws >= 3
	}},
	{"Slow Starter", "Exactly one point from five or more games", func(in Input) bool {
		return in.Stats.GamesPlayed() >= 5 && in.Stats.Points() == 1
	}},
	{"Perfectionist", "Ten or more games, all of them lost", func(in Input) bool {
		return in.Stats.GamesPlayed() >= 10 && in.Stats.Wins == 0 && in.Stats.Draws == 0
	}},
	{"Hero of Lost Causes", "More MVP awards than wins", func(in Input) bool {
		return in.Stats.MVPAwards > in.Stats.Wins
	}},
	{"Mathematician", "Goal difference magnitude exactly equal to games played", func(in Input) bool {
		games := in.Stats.GamesPlayed()
		return games >= 5 && abs(in.Stats.GoalDifference) == games
	}},
	{"One Hit Wonder", "One win, one draw and a long tail of losses", func(in Input) bool {
		return in.Stats.GamesPlayed() >= 7 && in.Stats.Wins == 1 && in.Stats.Draws == 1 && in.Stats.Losses >= 5
	}},
	{"Cardio King", "Keeps showing up despite under a point per game", func(in Input) bool {
		return in.Stats.PointsPerGame() < 1 && in.Stats.GamesPlayed() >= 10
	}},
	{"Star of the Show", "Three or more MVP awards with a losing record", func(in Input) bool {
		return in.Stats.MVPAwards >= 3 && in.Stats.WinRate() < 50
	}},
}

// Evaluate maps one player's aggregate (plus optional profile and recent
// results) to the badges they hold. Pure and total: any valid aggregate
// yields a possibly empty list, in fixed rule-table order, and missing
// optional inputs only skip their rule groups.
func Evaluate(in Input) []Badge {
	out := make([]Badge, 0, 8)

	for _, group := range tierGroups {
		value, ok := group.metric(in)
		if !ok {
			continue
		}
		for _, t := range group.tiers {
			if value >= t.threshold {
				out = append(out, newBadge(t.name, t.description))
				break
			}
		}
	}

	if in.Profile != nil {
		for _, rule := range perSkillRules {
			if rule.rating(in.Profile.Skills) >= perSkillThreshold {
				out = append(out, newBadge(rule.name, rule.description))
			}
		}

		for _, rule := range moveRules {
			if hasAnyMove(in.Profile.SignatureMoves, rule.moves) {
				out = append(out, newBadge(rule.name, rule.description))
			}
		}
		if len(in.Profile.SignatureMoves) >= swissArmyKnifeMoves {
			out = append(out, newBadge("Swiss Army Knife", "Five or more signature moves"))
		}
	}

	out = append(out, recentFormBadges(in.Recent)...)

	for _, rule := range specialRules {
		if rule.applies(in) {
			out = append(out, newBadge(rule.name, rule.description))
		}
	}

	return out
}

func recentFormBadges(recent []match.Outcome) []Badge {
	if len(recent) < recentMinResults {
		return nil
	}
	window := recent
	if len(window) > RecentWindow {
		window = window[:RecentWindow]
	}

	wins, losses := 0, 0
	for _, outcome := range window {
		switch outcome {
		case match.OutcomeWin:
			wins++
		case match.OutcomeLoss:
			losses++
		}
	}

	switch {
	case wins >= 5:
		return []Badge{newBadge("On Fire", "Won at least five of the last six games")}
	case wins == 0 && losses >= 4:
		return []Badge{newBadge("Stormy Weather", "Winless with four or more recent losses")}
	default:
		return nil
	}
}

func hasAnyMove(moves, needles []string) bool {
	for _, move := range moves {
		lowered := strings.ToLower(move)
		for _, needle := range needles {
			if strings.Contains(lowered, needle) {
				return true
			}
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
