package profile

import "fmt"

// SkillRatings are the six 0-100 attributes a player can self-report.
type SkillRatings struct {
	Pace      int
	Shooting  int
	Passing   int
	Dribbling int
	Defending int
	Physical  int
}

func (s SkillRatings) Average() float64 {
	sum := s.Pace + s.Shooting + s.Passing + s.Dribbling + s.Defending + s.Physical
	return float64(sum) / 6
}

// Profile carries optional player attributes; badge evaluation treats it as
// read-only input and skips profile rules when it is absent.
type Profile struct {
	PlayerID       string
	FavoriteClub   string
	Skills         SkillRatings
	SignatureMoves []string
}

func (p Profile) Validate() error {
	if p.PlayerID == "" {
		return fmt.Errorf("profile player id is required")
	}
	for _, rating := range []int{
		p.Skills.Pace, p.Skills.Shooting, p.Skills.Passing,
		p.Skills.Dribbling, p.Skills.Defending, p.Skills.Physical,
	} {
		if rating < 0 || rating > 100 {
			return fmt.Errorf("skill rating out of range: %d", rating)
		}
	}
	return nil
}
