package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerID}/badges", handler.GetPlayerBadges)
	mux.HandleFunc("GET /v1/players/{playerID}/recent-form", handler.GetPlayerRecentForm)
	mux.HandleFunc("POST /v1/matches", handler.RecordMatch)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("POST /v1/games", handler.ScheduleGame)
	mux.HandleFunc("GET /v1/games/{gameID}/signups", handler.GetSignupSheet)
	mux.HandleFunc("POST /v1/games/{gameID}/signups", handler.SignUpForGame)
	mux.HandleFunc("DELETE /v1/games/{gameID}/signups/{participantID}", handler.CancelSignup)
	mux.HandleFunc("POST /v1/games/{gameID}/signups/{participantID}/dropout", handler.MarkLastMinuteDropout)
	mux.HandleFunc("GET /v1/debts", handler.GetDebtReport)
	mux.HandleFunc("GET /v1/debts/{participantID}", handler.GetParticipantDebt)
	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("POST /v1/news", handler.PublishNews)
	mux.HandleFunc("POST /v1/avatars/generate", handler.GenerateAvatars)
}
