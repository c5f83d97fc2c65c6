package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/domain/news"
	"sunday-league/internal/domain/player"
	"sunday-league/internal/domain/profile"
)

type stubMatchRepo struct {
	mu        sync.Mutex
	records   []match.Record
	listCalls int32
	listErr   error
	insertErr error
}

func (s *stubMatchRepo) List(context.Context) ([]match.Record, error) {
	atomic.AddInt32(&s.listCalls, 1)
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]match.Record(nil), s.records...), nil
}

func (s *stubMatchRepo) Insert(_ context.Context, record match.Record) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

type stubPlayerRepo struct {
	mu      sync.Mutex
	players []player.Player
	updated map[string]string
}

func (s *stubPlayerRepo) List(context.Context) ([]player.Player, error) {
	return append([]player.Player(nil), s.players...), nil
}

func (s *stubPlayerRepo) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	for _, item := range s.players {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepo) UpdateAvatarURL(_ context.Context, playerID, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updated == nil {
		s.updated = make(map[string]string)
	}
	s.updated[playerID] = avatarURL
	return nil
}

type stubProfileRepo struct {
	profiles map[string]profile.Profile
}

func (s *stubProfileRepo) GetByPlayer(_ context.Context, playerID string) (profile.Profile, bool, error) {
	item, ok := s.profiles[playerID]
	return item, ok, nil
}

func (s *stubProfileRepo) Upsert(_ context.Context, item profile.Profile) error {
	if s.profiles == nil {
		s.profiles = make(map[string]profile.Profile)
	}
	s.profiles[item.PlayerID] = item
	return nil
}

type stubGameRepo struct {
	mu              sync.Mutex
	games           []game.ScheduledGame
	signups         []game.Signup
	insertSignupErr error
}

func (s *stubGameRepo) ListGames(context.Context) ([]game.ScheduledGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]game.ScheduledGame(nil), s.games...), nil
}

func (s *stubGameRepo) GetGame(_ context.Context, gameID string) (game.ScheduledGame, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.games {
		if item.ID == gameID {
			return item, true, nil
		}
	}
	return game.ScheduledGame{}, false, nil
}

func (s *stubGameRepo) InsertGame(_ context.Context, item game.ScheduledGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append(s.games, item)
	return nil
}

func (s *stubGameRepo) ListSignups(context.Context) ([]game.Signup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]game.Signup(nil), s.signups...), nil
}

func (s *stubGameRepo) ListSignupsByGame(_ context.Context, gameID string) ([]game.Signup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]game.Signup, 0, len(s.signups))
	for _, item := range s.signups {
		if item.GameID == gameID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubGameRepo) InsertSignup(_ context.Context, item game.Signup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertSignupErr != nil {
		return s.insertSignupErr
	}
	for _, existing := range s.signups {
		if existing.GameID == item.GameID && existing.ParticipantID == item.ParticipantID {
			return game.ErrSignupExists
		}
	}
	s.signups = append(s.signups, item)
	return nil
}

func (s *stubGameRepo) DeleteSignup(_ context.Context, gameID, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, item := range s.signups {
		if item.GameID == gameID && item.ParticipantID == participantID {
			s.signups = append(s.signups[:idx], s.signups[idx+1:]...)
			return nil
		}
	}
	return game.ErrSignupNotFound
}

func (s *stubGameRepo) SetLastMinuteDropout(_ context.Context, gameID, participantID string, dropout bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, item := range s.signups {
		if item.GameID == gameID && item.ParticipantID == participantID {
			s.signups[idx].LastMinuteDropout = dropout
			return nil
		}
	}
	return game.ErrSignupNotFound
}

type stubNewsRepo struct {
	posts []news.Post
}

func (s *stubNewsRepo) List(context.Context) ([]news.Post, error) {
	return append([]news.Post(nil), s.posts...), nil
}

func (s *stubNewsRepo) Insert(_ context.Context, item news.Post) error {
	s.posts = append(s.posts, item)
	return nil
}

type seqIDGenerator struct {
	counter int32
}

func (s *seqIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("id-%04d", atomic.AddInt32(&s.counter, 1)), nil
}

type recordingNotifier struct {
	mu             sync.Mutex
	matchIDs       []string
	gameIDs        []string
	matchErr       error
	gameErr        error
	matchCallCount int
}

func (n *recordingNotifier) MatchRecorded(_ context.Context, record match.Record) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matchCallCount++
	n.matchIDs = append(n.matchIDs, record.ID)
	return n.matchErr
}

func (n *recordingNotifier) GameScheduled(_ context.Context, item game.ScheduledGame) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gameIDs = append(n.gameIDs, item.ID)
	return n.gameErr
}

type stubAvatarGenerator struct {
	mu      sync.Mutex
	prompts []string
	err     error
}

func (g *stubAvatarGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return "https://img.example/" + fmt.Sprintf("%d.png", len(g.prompts)), nil
}
