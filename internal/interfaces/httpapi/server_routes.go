package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matches", handler.ListMatchesByLeague)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/fixtures/generate", handler.GenerateFixtures)
	mux.HandleFunc("GET /v1/facilities", handler.ListFacilities)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/schedule", handler.ScheduleMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/unschedule", handler.UnscheduleMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("POST /v1/matches/bulk", handler.RunBulkOperation)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/auto-schedule", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoScheduleJob)))
}
