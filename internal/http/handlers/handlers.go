package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	playerapp "garu-data-service/internal/app/players"
	teamapp "garu-data-service/internal/app/teams"
	"garu-data-service/internal/journey"
	"garu-data-service/internal/snapshots"
	"garu-data-service/internal/warmer"
)

// JourneySource serves team-journey players.
type JourneySource interface {
	Players(ctx context.Context, count, minTeams int) journey.Result
}

// ManifestReader exposes the snapshot manifest for readiness reporting.
type ManifestReader interface {
	LoadManifest() (snapshots.Manifest, error)
}

// Options configures a Handler.
type Options struct {
	Players   *playerapp.Service
	Teams     *teamapp.Service
	Journeys  JourneySource
	Manifest  ManifestReader
	Warmup    func() warmer.Status
	RosterTTL time.Duration
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// Handler wires HTTP routes to the roster, team and journey services.
type Handler struct {
	players   *playerapp.Service
	teams     *teamapp.Service
	journeys  JourneySource
	manifest  ManifestReader
	warmup    func() warmer.Status
	rosterTTL time.Duration
	clock     clockwork.Clock
	logger    *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(opts Options) *Handler {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	teams := opts.Teams
	if teams == nil {
		teams = teamapp.NewService()
	}
	return &Handler{
		players:   opts.Players,
		teams:     teams,
		journeys:  opts.Journeys,
		manifest:  opts.Manifest,
		warmup:    opts.Warmup,
		rosterTTL: opts.RosterTTL,
		clock:     clock,
		logger:    opts.Logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

type readyResponse struct {
	Status string       `json:"status"`
	Roster *rosterState `json:"roster,omitempty"`
}

type rosterState struct {
	Season        string    `json:"season"`
	Count         int       `json:"count"`
	LastRefreshed time.Time `json:"lastRefreshed"`
	AgeSeconds    int64     `json:"ageSeconds"`
	Stale         bool      `json:"stale"`
}

// Ready reports readiness along with the age of the local roster snapshot.
// Traffic is refused until the boot-time warm-up has resolved a roster. A missing
// snapshot is not fatal since the durable store or a live fetch may have answered.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	if h.warmup != nil {
		if st := h.warmup(); !st.IsReady() {
			msg := st.LastError
			if msg == "" {
				msg = "warming up"
			}
			writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
			return
		}
	}
	resp := readyResponse{Status: "ready"}
	if h.manifest == nil {
		writeJSON(w, http.StatusOK, resp, h.logger)
		return
	}

	m, err := h.manifest.LoadManifest()
	switch {
	case errors.Is(err, snapshots.ErrNotFound):
	case err != nil:
		loggerFromContext(r, h.logger).Warn("snapshot manifest unreadable", "err", err)
	case !m.Roster.LastRefreshed.IsZero():
		age := h.clock.Since(m.Roster.LastRefreshed)
		resp.Roster = &rosterState{
			Season:        m.Roster.Season,
			Count:         m.Roster.Count,
			LastRefreshed: m.Roster.LastRefreshed,
			AgeSeconds:    int64(age / time.Second),
			Stale:         h.rosterTTL > 0 && age > h.rosterTTL,
		}
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}
