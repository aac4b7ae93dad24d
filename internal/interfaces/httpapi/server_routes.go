package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)

	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}", handler.UpdateMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetMatchScorecard)
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/analytics/queries", handler.ListAnalyticsQueries)
	mux.HandleFunc("GET /v1/analytics/queries/{queryName}", handler.RunAnalyticsQuery)
}

func registerInternalIngestionRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingestion/players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTrendingPlayers)))
	mux.Handle("POST /v1/internal/ingestion/matches", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestRecentMatches)))
	mux.Handle("POST /v1/internal/ingestion/scorecards", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestRecentScorecards)))
	mux.Handle("POST /v1/internal/ingestion/scorecards/{matchID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestMatchScorecard)))
}
