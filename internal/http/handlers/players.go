package handlers

import (
	"net/http"
	"strconv"
	"strings"

	playerapp "garu-data-service/internal/app/players"
	"garu-data-service/internal/cache"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/logging"
	"garu-data-service/internal/roster"
)

const (
	defaultRandomCount     = 1
	defaultRolePlayerCount = 10
	defaultSearchLimit     = 20
	defaultPositionLimit   = 50
)

type playersResponse struct {
	Players  players.Roster `json:"players"`
	Count    int            `json:"count"`
	Season   string         `json:"season"`
	Source   cache.Tier     `json:"source,omitempty"`
	Team     string         `json:"team,omitempty"`
	Query    string         `json:"query,omitempty"`
	Position string         `json:"position,omitempty"`
}

type playerResponse struct {
	Player players.Record `json:"player"`
	Season string         `json:"season"`
	Date   string         `json:"date,omitempty"`
}

type refreshResponse struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Season string     `json:"season"`
	Source cache.Tier `json:"source"`
}

func newPlayersResponse(p playerapp.Page) playersResponse {
	return playersResponse{Players: p.Players, Count: len(p.Players), Season: p.Season, Source: p.Source}
}

// ListPlayers serves the roster with optional team, position and scoring filters.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := listQuery{
		Team:     strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("team"))),
		Position: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("position"))),
	}
	var err error
	if q.MinPoints, err = floatParam(r, "min_ppg", 0); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if q.Limit, err = intParam(r, "limit", playerapp.MaxListLimit); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if q.Refresh, err = boolParam(r, "refresh"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	page := h.players.List(r.Context(), playerapp.Filter{
		Team:      q.Team,
		Position:  q.Position,
		MinPoints: q.MinPoints,
		Limit:     q.Limit,
		Refresh:   q.Refresh,
	})
	writeJSON(w, http.StatusOK, newPlayersResponse(page), h.logger)
}

// RefreshPlayers forces a live roster fetch and reports which tier ended up answering.
func (h *Handler) RefreshPlayers(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	res := h.players.Refresh(r.Context())
	if res.Err != nil {
		logging.Error(logger, "roster refresh produced no data", res.Err)
		writeError(w, r, http.StatusServiceUnavailable, "no player data available", h.logger)
		return
	}
	status := "refreshed"
	if res.Degraded {
		status = "degraded"
	}
	logging.Info(logger, "roster refresh served",
		logging.FieldTier, string(res.Source),
		logging.FieldCount, len(res.Players),
	)
	writeJSON(w, http.StatusOK, refreshResponse{
		Status: status,
		Count:  len(res.Players),
		Season: res.Season,
		Source: res.Source,
	}, h.logger)
}

// Stars serves players averaging at least min_ppg.
func (h *Handler) Stars(w http.ResponseWriter, r *http.Request) {
	minPts, err := floatParam(r, "min_ppg", roster.DefaultStarPoints)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newPlayersResponse(h.players.Stars(r.Context(), minPts)), h.logger)
}

// Top serves the highest rated players. Counts above roster.MaxTop are capped.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("count"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "count must be an integer", h.logger)
		return
	}
	q := countQuery{Count: min(n, roster.MaxTop)}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newPlayersResponse(h.players.Top(r.Context(), q.Count)), h.logger)
}

// Random serves a random sample of the roster.
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "count", defaultRandomCount)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	q := randomQuery{Count: n}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	page := h.players.Random(r.Context(), q.Count)
	if len(page.Players) == 0 {
		writeError(w, r, http.StatusServiceUnavailable, "no player data available", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newPlayersResponse(page), h.logger)
}

// RolePlayers serves recognizable mid-usage players for guessing games.
func (h *Handler) RolePlayers(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r, "count", defaultRolePlayerCount)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	q := rolePlayersQuery{Count: n}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newPlayersResponse(h.players.RolePlayers(r.Context(), q.Count)), h.logger)
}

// Daily serves the deterministic player of the day.
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	p, date, ok := h.players.Daily(r.Context())
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "no player data available", h.logger)
		return
	}
	loggerFromContext(r, h.logger).Debug("daily player picked",
		logging.FieldDate, date,
		logging.FieldPlayerID, p.ID,
	)
	writeJSON(w, http.StatusOK, playerResponse{Player: p, Season: h.players.Season(), Date: date}, h.logger)
}

// TeamRoster serves one team's players.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	abbr := strings.ToUpper(strings.TrimSpace(r.PathValue("abbr")))
	page := h.players.Team(r.Context(), abbr)
	if len(page.Players) == 0 {
		writeError(w, r, http.StatusNotFound, "no players found for team "+abbr, h.logger)
		return
	}
	resp := newPlayersResponse(page)
	resp.Team = abbr
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Search serves players whose names contain the query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultSearchLimit)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	q := searchQuery{Query: strings.TrimSpace(r.PathValue("query")), Limit: limit}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp := newPlayersResponse(h.players.Search(r.Context(), q.Query, q.Limit))
	resp.Query = q.Query
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// ByPosition serves players at one position, optionally mixed for a draft.
func (h *Handler) ByPosition(w http.ResponseWriter, r *http.Request) {
	pos, ok := players.ParsePosition(r.PathValue("position"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid position, must be one of PG, SG, SF, PF, C", h.logger)
		return
	}
	q := positionQuery{Position: string(pos)}
	var err error
	if q.Limit, err = intParam(r, "limit", defaultPositionLimit); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if q.ForDraft, err = boolParam(r, "for_draft"); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := validateQuery(&q); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	resp := newPlayersResponse(h.players.ByPosition(r.Context(), pos, q.Limit, q.ForDraft))
	resp.Position = q.Position
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// PlayerByID serves a single player.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "player id must be an integer", h.logger)
		return
	}
	p, ok := h.players.ByID(r.Context(), id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, playerResponse{Player: p, Season: h.players.Season()}, h.logger)
}
