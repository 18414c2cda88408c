package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

func TestPlayerArgsRoundTripThroughDecode(t *testing.T) {
	rec := players.Record{
		ID:          2544,
		Name:        "LeBron James",
		Team:        "LAL",
		Position:    players.SmallForward,
		GamesPlayed: 70,
		StatLine:    players.StatLine{Points: 25.7, Rebounds: 7.3, Assists: 8.3, FGPct: 0.54},
		Rating:      92,
		Season:      "2025-26",
	}
	args, err := playerArgs(rec)
	if err != nil {
		t.Fatalf("playerArgs: %v", err)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 column args, got %d", len(args))
	}
	teamID, ok := args[2].(*int64)
	if !ok || teamID == nil || *teamID != 1610612747 {
		t.Fatalf("expected LAL team id, got %#v", args[2])
	}

	got, err := decodePlayer(rec.ID, rec.Name, rec.Team, string(rec.Position), []byte(args[5].(string)))
	if err != nil {
		t.Fatalf("decodePlayer: %v", err)
	}
	if got != rec {
		t.Fatalf("expected %+v, got %+v", rec, got)
	}
}

func TestPlayerArgsFreeAgentHasNoTeamID(t *testing.T) {
	args, err := playerArgs(players.Record{ID: 1, Team: "FA", Position: players.Center})
	if err != nil {
		t.Fatalf("playerArgs: %v", err)
	}
	if args[2].(*int64) != nil {
		t.Fatalf("expected nil team id for free agent, got %v", *args[2].(*int64))
	}
}

func TestDecodePlayerRejectsCorruptStats(t *testing.T) {
	_, err := decodePlayer(1, "x", "BOS", "PG", []byte("{not json"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestOpenWithoutDSNIsUnavailable(t *testing.T) {
	if _, err := Open(context.Background(), "  "); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSchemaDeclaresBothTables(t *testing.T) {
	for _, table := range []string{"cached_players", "journey_players"} {
		if !strings.Contains(schemaSQL, table) {
			t.Fatalf("schema missing %s", table)
		}
	}
}

func TestPostgresIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	roster := players.Roster{
		{ID: 900001, Name: "Test Guard", Team: "BOS", Position: players.PointGuard, StatLine: players.StatLine{Points: 10}},
		{ID: 900002, Name: "Test Center", Team: "FA", Position: players.Center, StatLine: players.StatLine{Points: 20}},
	}
	if err := db.UpsertPlayers(ctx, roster); err != nil {
		t.Fatalf("upsert players: %v", err)
	}
	listed, err := db.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	found := 0
	for _, r := range listed {
		if r.ID == 900001 || r.ID == 900002 {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected both test players, found %d", found)
	}

	if err := db.UpsertJourneys(ctx, []journeys.Record{{ID: 900001, Name: "Test Guard", Teams: []string{"BOS", "MIA"}, CurrentTeam: "MIA"}}); err != nil {
		t.Fatalf("upsert journeys: %v", err)
	}
	js, err := db.ListJourneys(ctx)
	if err != nil {
		t.Fatalf("list journeys: %v", err)
	}
	if len(js) == 0 {
		t.Fatal("expected journey rows")
	}
}

type recordingPool struct {
	execSQL  []string
	execArgs [][]any
	batches  int
	execErr  error
}

func (p *recordingPool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.execSQL = append(p.execSQL, sql)
	p.execArgs = append(p.execArgs, args)
	return pgconn.CommandTag{}, p.execErr
}

func (p *recordingPool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (p *recordingPool) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	p.batches++
	return okBatchResults{}
}

func (p *recordingPool) Ping(context.Context) error { return nil }
func (p *recordingPool) Close()                     {}

type okBatchResults struct{}

func (okBatchResults) Exec() (pgconn.CommandTag, error) { return pgconn.CommandTag{}, nil }
func (okBatchResults) Query() (pgx.Rows, error)         { return nil, errors.New("not implemented") }
func (okBatchResults) QueryRow() pgx.Row                { return nil }
func (okBatchResults) Close() error                     { return nil }

func TestUpsertPlayersDeactivatesMissingPlayers(t *testing.T) {
	pool := &recordingPool{}
	db := &Postgres{db: pool}
	roster := players.Roster{{ID: 7, Team: "BOS", Position: players.Center}, {ID: 9, Team: "LAL", Position: players.PointGuard}}

	if err := db.UpsertPlayers(context.Background(), roster); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if pool.batches != 1 {
		t.Fatalf("expected one batch, got %d", pool.batches)
	}
	if len(pool.execSQL) != 1 || pool.execSQL[0] != deactivatePlayersSQL {
		t.Fatalf("expected deactivation after upsert, got %v", pool.execSQL)
	}
	ids, ok := pool.execArgs[0][0].([]int64)
	if !ok || len(ids) != 2 || ids[0] != 7 || ids[1] != 9 {
		t.Fatalf("expected upserted ids as the active set, got %#v", pool.execArgs[0])
	}
}

func TestUpsertPlayersEmptyRosterKeepsStoredRows(t *testing.T) {
	pool := &recordingPool{}
	if err := (&Postgres{db: pool}).UpsertPlayers(context.Background(), nil); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if pool.batches != 0 || len(pool.execSQL) != 0 {
		t.Fatalf("expected no statements for an empty roster, got %d batches %v", pool.batches, pool.execSQL)
	}
}

func TestUpsertPlayersDeactivationFailureIsUnavailable(t *testing.T) {
	pool := &recordingPool{execErr: errors.New("boom")}
	err := (&Postgres{db: pool}).UpsertPlayers(context.Background(), players.Roster{{ID: 1, Position: players.Center}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
