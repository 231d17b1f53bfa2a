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

func registerArchiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/index", handler.GetIndex)
	mux.HandleFunc("GET /v1/scores/{date}", handler.GetScores)
	mux.HandleFunc("GET /v1/games/{gameID}/boxscore", handler.GetBoxscore)
	mux.HandleFunc("GET /v1/games/{gameID}/gameflow", handler.GetGameflow)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/run-pipeline", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunPipelineJob)))
}
