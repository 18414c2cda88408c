package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"garu-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux and wraps them with CORS for allowedOrigins.
func NewRouter(h *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /api/players", h.ListPlayers)
	mux.HandleFunc("GET /api/players/refresh", h.RefreshPlayers)
	mux.HandleFunc("GET /api/players/stars", h.Stars)
	mux.HandleFunc("GET /api/players/top/{count}", h.Top)
	mux.HandleFunc("GET /api/players/random", h.Random)
	mux.HandleFunc("GET /api/players/role-players", h.RolePlayers)
	mux.HandleFunc("GET /api/players/daily", h.Daily)
	mux.HandleFunc("GET /api/players/teams", h.Teams)
	mux.HandleFunc("GET /api/players/team/{abbr}", h.TeamRoster)
	mux.HandleFunc("GET /api/players/search/{query}", h.Search)
	mux.HandleFunc("GET /api/players/by-position/{position}", h.ByPosition)
	mux.HandleFunc("GET /api/players/journey/players", h.JourneyPlayers)
	mux.HandleFunc("GET /api/players/{id}", h.PlayerByID)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(mux)
}
