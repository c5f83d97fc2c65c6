package memory

import (
	"time"

	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/news"
	"sunday-league/internal/domain/player"
	"sunday-league/internal/domain/profile"
)

// Seed data for local development without a database.

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "p-jonas", Name: "Jonas Weber", Nickname: "Jonny"},
		{ID: "p-marco", Name: "Marco Silva"},
		{ID: "p-timo", Name: "Timo Becker"},
		{ID: "p-ali", Name: "Ali Osman"},
		{ID: "p-stefan", Name: "Stefan Krol", Nickname: "Big Stef"},
		{ID: "p-dennis", Name: "Dennis Park"},
	}
}

func SeedProfiles() []profile.Profile {
	return []profile.Profile{
		{
			PlayerID:     "p-jonas",
			FavoriteClub: "Borussia Dortmund",
			Skills: profile.SkillRatings{
				Pace: 91, Shooting: 78, Passing: 74, Dribbling: 82, Defending: 55, Physical: 70,
			},
			SignatureMoves: []string{"Rainbow Flick", "Nutmeg"},
		},
		{
			PlayerID:     "p-marco",
			FavoriteClub: "Benfica",
			Skills: profile.SkillRatings{
				Pace: 68, Shooting: 85, Passing: 88, Dribbling: 80, Defending: 62, Physical: 74,
			},
			SignatureMoves: []string{"Trivela"},
		},
	}
}

func SeedMatches() []match.Record {
	base := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	return []match.Record{
		{
			ID:        "m-0001",
			TeamA:     []string{"p-jonas", "p-marco", "p-timo"},
			TeamB:     []string{"p-ali", "p-stefan", "p-dennis"},
			GoalsA:    5,
			GoalsB:    3,
			MVPPlayer: "p-jonas",
			PlayedAt:  base,
		},
		{
			ID:       "m-0002",
			TeamA:    []string{"p-jonas", "p-ali", "p-dennis"},
			TeamB:    []string{"p-marco", "p-stefan", "p-timo"},
			GoalsA:   2,
			GoalsB:   2,
			PlayedAt: base.AddDate(0, 0, 7),
		},
		{
			ID:        "m-0003",
			TeamA:     []string{"p-marco", "p-ali", "p-timo"},
			TeamB:     []string{"p-jonas", "p-stefan", "p-dennis"},
			GoalsA:    4,
			GoalsB:    1,
			MVPPlayer: "p-marco",
			PlayedAt:  base.AddDate(0, 0, 14),
		},
	}
}

func SeedGames() []game.ScheduledGame {
	return []game.ScheduledGame{
		{
			ID:          "g-0001",
			ScheduledAt: time.Date(2025, time.March, 23, 10, 0, 0, 0, time.UTC),
			PitchSize:   game.PitchSmall,
			Location:    "Sportpark Ost, pitch 2",
		},
		{
			ID:          "g-0002",
			ScheduledAt: time.Date(2025, time.March, 30, 10, 0, 0, 0, time.UTC),
			PitchSize:   game.PitchBig,
			Location:    "Sportpark Ost, pitch 1",
		},
	}
}

func SeedSignups() []game.Signup {
	signedUp := time.Date(2025, time.March, 17, 19, 0, 0, 0, time.UTC)
	out := make([]game.Signup, 0, len(SeedPlayers()))
	for idx, item := range SeedPlayers() {
		out = append(out, game.Signup{
			ID:            "s-000" + string(rune('1'+idx)),
			GameID:        "g-0001",
			ParticipantID: item.ID,
			SignedUpAt:    signedUp.Add(time.Duration(idx) * time.Minute),
		})
	}
	return out
}

func SeedNews() []news.Post {
	return []news.Post{
		{
			ID:          "n-0001",
			Title:       "Spring season kicks off",
			Body:        "First game of the spring season is on March 23rd. Small pitch, twelve paid slots, arrive early.",
			Author:      "league-admin",
			PublishedAt: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		},
	}
}
