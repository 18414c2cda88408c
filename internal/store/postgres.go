package store

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
	"garu-data-service/internal/domain/teams"
)

//go:embed schema.sql
var schemaSQL string

const (
	upsertPlayerSQL = `
INSERT INTO cached_players (player_id, full_name, team_id, team_abbreviation, is_active, position, season_stats, updated_at)
VALUES ($1, $2, $3, $4, TRUE, $5, $6, now())
ON CONFLICT (player_id) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    team_id = EXCLUDED.team_id,
    team_abbreviation = EXCLUDED.team_abbreviation,
    is_active = EXCLUDED.is_active,
    position = EXCLUDED.position,
    season_stats = EXCLUDED.season_stats,
    updated_at = EXCLUDED.updated_at`

	deactivatePlayersSQL = `
UPDATE cached_players
SET is_active = FALSE, updated_at = now()
WHERE is_active AND NOT (player_id = ANY($1))`

	selectPlayersSQL = `
SELECT player_id, full_name, team_abbreviation, position, season_stats
FROM cached_players
WHERE is_active`

	upsertJourneySQL = `
INSERT INTO journey_players (player_id, full_name, teams, current_team, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (player_id) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    teams = EXCLUDED.teams,
    current_team = EXCLUDED.current_team,
    updated_at = EXCLUDED.updated_at`

	selectJourneysSQL = `
SELECT player_id, full_name, teams, current_team
FROM journey_players
ORDER BY updated_at DESC, player_id`
)

// pool is the subset of *pgxpool.Pool the store needs.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Ping(ctx context.Context) error
	Close()
}

// Postgres is the durable store backed by the cached_players and journey_players tables.
type Postgres struct {
	db pool
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%w: no DSN configured", ErrUnavailable)
	}
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %w", ErrUnavailable, err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("%w: ping: %w", ErrUnavailable, err)
	}
	return &Postgres{db: p}, nil
}

// Close releases the pool.
func (p *Postgres) Close() {
	if p != nil && p.db != nil {
		p.db.Close()
	}
}

// Ping reports whether the database is reachable.
func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrUnavailable, err)
	}
	return nil
}

// EnsureSchema creates both tables when missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := p.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%w: ensure schema: %w", ErrUnavailable, err)
		}
	}
	return nil
}

// UpsertPlayers writes the roster in batches of BatchSize, then marks every stored
// player missing from it inactive. An empty roster changes nothing.
func (p *Postgres) UpsertPlayers(ctx context.Context, roster players.Roster) error {
	if len(roster) == 0 {
		return nil
	}
	for start := 0; start < len(roster); start += BatchSize {
		end := min(start+BatchSize, len(roster))
		batch := &pgx.Batch{}
		for _, r := range roster[start:end] {
			args, err := playerArgs(r)
			if err != nil {
				return err
			}
			batch.Queue(upsertPlayerSQL, args...)
		}
		if err := p.sendBatch(ctx, batch, "upsert players"); err != nil {
			return err
		}
	}

	ids := make([]int64, 0, len(roster))
	for _, r := range roster {
		ids = append(ids, r.ID)
	}
	if _, err := p.db.Exec(ctx, deactivatePlayersSQL, ids); err != nil {
		return fmt.Errorf("%w: deactivate players: %w", ErrUnavailable, err)
	}
	return nil
}

// ListPlayers reads every active player, ordered by points per game.
func (p *Postgres) ListPlayers(ctx context.Context) (players.Roster, error) {
	rows, err := p.db.Query(ctx, selectPlayersSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	roster := players.Roster{}
	for rows.Next() {
		var (
			id       int64
			name     string
			team     string
			position string
			stats    []byte
		)
		if err := rows.Scan(&id, &name, &team, &position, &stats); err != nil {
			return nil, fmt.Errorf("%w: scan player: %w", ErrUnavailable, err)
		}
		rec, err := decodePlayer(id, name, team, position, stats)
		if err != nil {
			return nil, err
		}
		roster = append(roster, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list players: %w", ErrUnavailable, err)
	}
	sortByPoints(roster)
	return roster, nil
}

// UpsertJourneys writes journey records in batches of BatchSize.
func (p *Postgres) UpsertJourneys(ctx context.Context, records []journeys.Record) error {
	for start := 0; start < len(records); start += BatchSize {
		end := min(start+BatchSize, len(records))
		batch := &pgx.Batch{}
		for _, r := range records[start:end] {
			batch.Queue(upsertJourneySQL, r.ID, r.Name, r.Teams, r.CurrentTeam)
		}
		if err := p.sendBatch(ctx, batch, "upsert journeys"); err != nil {
			return err
		}
	}
	return nil
}

// ListJourneys reads every stored journey record, most recently refreshed first.
func (p *Postgres) ListJourneys(ctx context.Context) ([]journeys.Record, error) {
	rows, err := p.db.Query(ctx, selectJourneysSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: list journeys: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	out := []journeys.Record{}
	for rows.Next() {
		var r journeys.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Teams, &r.CurrentTeam); err != nil {
			return nil, fmt.Errorf("%w: scan journey: %w", ErrUnavailable, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list journeys: %w", ErrUnavailable, err)
	}
	return out, nil
}

func (p *Postgres) sendBatch(ctx context.Context, batch *pgx.Batch, op string) error {
	results := p.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
	}
	return nil
}

// playerArgs maps a record onto the cached_players columns. The full record is kept
// in season_stats so a row can be rebuilt without the upstream.
func playerArgs(r players.Record) ([]any, error) {
	stats, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode season_stats for %d: %w", r.ID, err)
	}
	var teamID *int64
	if t, ok := teams.ByAbbreviation(r.Team); ok {
		id := t.ID
		teamID = &id
	}
	return []any{r.ID, r.Name, teamID, r.Team, string(r.Position), string(stats)}, nil
}

func decodePlayer(id int64, name, team, position string, stats []byte) (players.Record, error) {
	var rec players.Record
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &rec); err != nil {
			return players.Record{}, fmt.Errorf("%w: decode season_stats for %d: %w", ErrUnavailable, id, err)
		}
	}
	rec.ID = id
	rec.Name = name
	rec.Team = team
	if pos, ok := players.ParsePosition(position); ok {
		rec.Position = pos
	}
	return rec, nil
}

func sortByPoints(roster players.Roster) {
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Points > roster[j].Points
	})
}
