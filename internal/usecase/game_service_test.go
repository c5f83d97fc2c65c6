package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sunday-league/internal/domain/game"
)

func TestSchedule_AssignsIDAndNotifies(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{}
	notifier := &recordingNotifier{}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, notifier, nil)

	item, err := svc.Schedule(context.Background(), ScheduleGameInput{
		ScheduledAt: time.Date(2026, 4, 5, 9, 0, 0, 0, time.UTC),
		PitchSize:   game.PitchSmall,
		Location:    "Riverside",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated game id")
	}
	if len(gameRepo.games) != 1 {
		t.Fatalf("stored games got=%d want=1", len(gameRepo.games))
	}
	if len(notifier.gameIDs) != 1 || notifier.gameIDs[0] != item.ID {
		t.Fatalf("notified game ids=%v want=[%s]", notifier.gameIDs, item.ID)
	}
}

func TestSchedule_NotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{gameErr: errors.New("webhook down")}
	svc := NewGameService(&stubGameRepo{}, &seqIDGenerator{}, notifier, nil)

	if _, err := svc.Schedule(context.Background(), ScheduleGameInput{
		ScheduledAt: time.Now(),
	}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
}

func TestSignUp_MissingGameIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewGameService(&stubGameRepo{}, &seqIDGenerator{}, nil, nil)

	if _, err := svc.SignUp(context.Background(), "nope", "p1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestSignUp_DuplicateParticipantIsRejected(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{{ID: "g1", ScheduledAt: time.Now()}}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	ctx := context.Background()
	if _, err := svc.SignUp(ctx, "g1", "p1"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.SignUp(ctx, "g1", "p1"); !errors.Is(err, ErrDuplicateSignup) {
		t.Fatalf("err=%v want ErrDuplicateSignup", err)
	}
	if len(gameRepo.signups) != 1 {
		t.Fatalf("stored signups got=%d want=1", len(gameRepo.signups))
	}
}

func TestSignUp_SamePersonOnDifferentGames(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{
		{ID: "g1", ScheduledAt: time.Now()},
		{ID: "g2", ScheduledAt: time.Now().Add(7 * 24 * time.Hour)},
	}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	ctx := context.Background()
	if _, err := svc.SignUp(ctx, "g1", "p1"); err != nil {
		t.Fatalf("signup g1: %v", err)
	}
	if _, err := svc.SignUp(ctx, "g2", "p1"); err != nil {
		t.Fatalf("signup g2: %v", err)
	}
}

func TestSignupSheet_PositionsAndCostShares(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{
		{ID: "g1", ScheduledAt: time.Now(), PitchSize: game.PitchSmall},
	}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	base := time.Date(2026, 4, 5, 8, 0, 0, 0, time.UTC)
	clock := base
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	ctx := context.Background()
	for i := 0; i < 13; i++ {
		participantID := string(rune('a' + i))
		if _, err := svc.SignUp(ctx, "g1", participantID); err != nil {
			t.Fatalf("signup %s: %v", participantID, err)
		}
	}

	rows, err := svc.SignupSheet(ctx, "g1")
	if err != nil {
		t.Fatalf("signup sheet: %v", err)
	}
	if len(rows) != 13 {
		t.Fatalf("rows got=%d want=13", len(rows))
	}
	for idx, row := range rows {
		if row.Position != idx+1 {
			t.Fatalf("row %d position got=%d want=%d", idx, row.Position, idx+1)
		}
	}
	if !rows[11].OwesShare {
		t.Fatalf("position 12 should owe on a small pitch")
	}
	if rows[12].OwesShare {
		t.Fatalf("position 13 is a substitute on a small pitch and owes nothing")
	}
}

func TestSignupSheet_DropoutOwesPastCapacity(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{
		{ID: "g1", ScheduledAt: time.Now(), PitchSize: game.PitchSmall},
	}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	ctx := context.Background()
	for i := 0; i < 13; i++ {
		if _, err := svc.SignUp(ctx, "g1", string(rune('a'+i))); err != nil {
			t.Fatalf("signup: %v", err)
		}
	}
	if err := svc.MarkLastMinuteDropout(ctx, "g1", "m"); err != nil {
		t.Fatalf("mark dropout: %v", err)
	}

	rows, err := svc.SignupSheet(ctx, "g1")
	if err != nil {
		t.Fatalf("signup sheet: %v", err)
	}
	last := rows[len(rows)-1]
	if last.ParticipantID != "m" || !last.LastMinuteDropout {
		t.Fatalf("last row=%+v want participant m flagged as dropout", last)
	}
	if !last.OwesShare {
		t.Fatalf("late dropout past capacity must still owe a share")
	}
}

func TestSignupSheet_MissingGameIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewGameService(&stubGameRepo{}, &seqIDGenerator{}, nil, nil)

	if _, err := svc.SignupSheet(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestCancelSignup_FreesTheSlot(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{{ID: "g1", ScheduledAt: time.Now()}}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	ctx := context.Background()
	if _, err := svc.SignUp(ctx, "g1", "p1"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := svc.CancelSignup(ctx, "g1", "p1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.SignUp(ctx, "g1", "p1"); err != nil {
		t.Fatalf("re-signup after cancel: %v", err)
	}
}

func TestSignUp_RepoLevelDuplicateMapsToConflict(t *testing.T) {
	t.Parallel()

	// Simulates a signup racing past the duplicate pre-check: the list
	// comes back empty but the repository insert still collides.
	gameRepo := &stubGameRepo{
		games:           []game.ScheduledGame{{ID: "g1", ScheduledAt: time.Now()}},
		insertSignupErr: game.ErrSignupExists,
	}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	if _, err := svc.SignUp(context.Background(), "g1", "p1"); !errors.Is(err, ErrDuplicateSignup) {
		t.Fatalf("err=%v want ErrDuplicateSignup", err)
	}
}

func TestCancelSignup_MissingSignupIsNotFound(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{{ID: "g1", ScheduledAt: time.Now()}}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	if err := svc.CancelSignup(context.Background(), "g1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestMarkLastMinuteDropout_MissingSignupIsNotFound(t *testing.T) {
	t.Parallel()

	gameRepo := &stubGameRepo{games: []game.ScheduledGame{{ID: "g1", ScheduledAt: time.Now()}}}
	svc := NewGameService(gameRepo, &seqIDGenerator{}, nil, nil)

	if err := svc.MarkLastMinuteDropout(context.Background(), "g1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestGameService_EmptyIDsAreInvalid(t *testing.T) {
	t.Parallel()

	svc := NewGameService(&stubGameRepo{}, &seqIDGenerator{}, nil, nil)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "", "p1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("signup err=%v want ErrInvalidInput", err)
	}
	if err := svc.CancelSignup(ctx, "g1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("cancel err=%v want ErrInvalidInput", err)
	}
	if err := svc.MarkLastMinuteDropout(ctx, "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("dropout err=%v want ErrInvalidInput", err)
	}
}
