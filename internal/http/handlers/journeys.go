package handlers

import (
	"net/http"

	"garu-data-service/internal/cache"
	"garu-data-service/internal/domain/journeys"
)

const (
	defaultJourneyCount    = 20
	defaultJourneyMinTeams = 3
)

type journeyResponse struct {
	Players  []journeys.Record `json:"players"`
	Count    int               `json:"count"`
	Season   string            `json:"season"`
	Source   cache.Tier        `json:"source,omitempty"`
	Degraded bool              `json:"degraded,omitempty"`
}

// JourneyPlayers serves players with their career team sequences.
func (h *Handler) JourneyPlayers(w http.ResponseWriter, r *http.Request) {
	var (
		q   journeyQuery
		err error
	)
	if q.Count, err = intParam(r, "count", defaultJourneyCount); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if q.MinTeams, err = intParam(r, "min_teams", defaultJourneyMinTeams); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if h.journeys == nil {
		writeError(w, r, http.StatusServiceUnavailable, "journeys unavailable", h.logger)
		return
	}

	res := h.journeys.Players(r.Context(), q.Count, q.MinTeams)
	records := res.Players
	if records == nil {
		records = []journeys.Record{}
	}
	writeJSON(w, http.StatusOK, journeyResponse{
		Players:  records,
		Count:    len(records),
		Season:   h.players.Season(),
		Source:   res.Source,
		Degraded: res.Degraded,
	}, h.logger)
}
