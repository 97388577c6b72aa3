package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/auth/status", handler.AuthStatus)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/game-modes", handler.ListGameModes)
	mux.HandleFunc("GET /v1/teams/{userID}/bonuses", handler.GetTeamBonuses)
	// The literal "main" segment outranks the {leagueID} wildcard, so the
	// global table keeps its own route next to per-league lookups.
	mux.HandleFunc("GET /v1/leagues/main/bonuses", handler.GetMainLeagueBonuses)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/bonuses", handler.GetLeagueBonuses)
}
