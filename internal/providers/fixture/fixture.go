package fixture

import (
	"context"
	"fmt"

	"garu-data-service/internal/providers"
)

// Provider returns a static league useful for local development and bootstrapping
// without touching stats.nba.com.
type Provider struct {
	rows      []providers.RawStatRow
	positions map[int64]string
	careers   map[int64][]providers.CareerRow
}

// New creates a fixture provider backed by the built-in sample league.
func New() *Provider {
	return &Provider{
		rows:      sampleRows,
		positions: samplePositions,
		careers:   sampleCareers,
	}
}

// FetchLeagueStats returns a copy of the sample per-game table, regardless of season.
func (p *Provider) FetchLeagueStats(ctx context.Context, season string) ([]providers.RawStatRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]providers.RawStatRow, len(p.rows))
	copy(out, p.rows)
	return out, nil
}

// FetchPlayerPositions returns the sample position index.
func (p *Provider) FetchPlayerPositions(ctx context.Context, season string) (map[int64]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(p.positions))
	for id, pos := range p.positions {
		out[id] = pos
	}
	return out, nil
}

// FetchCareerRows returns the sample career for the player, or ErrUpstreamUnavailable when unknown.
func (p *Provider) FetchCareerRows(ctx context.Context, playerID int64) ([]providers.CareerRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, ok := p.careers[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: fixture has no career for player %d", providers.ErrUpstreamUnavailable, playerID)
	}
	out := make([]providers.CareerRow, len(rows))
	copy(out, rows)
	return out, nil
}
