package player

import "fmt"

// Player is a registered league member. Guests can sign up for games but
// carry no roster entry, so they never appear here.
type Player struct {
	ID        string
	Name      string
	Nickname  string
	AvatarURL string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}
