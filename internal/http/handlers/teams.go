package handlers

import (
	"net/http"

	"garu-data-service/internal/domain/teams"
)

type teamsResponse struct {
	Teams []teams.Team `json:"teams"`
	Count int          `json:"count"`
}

// Teams serves the static franchise table.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	all := h.teams.Teams()
	writeJSON(w, http.StatusOK, teamsResponse{Teams: all, Count: len(all)}, h.logger)
}
