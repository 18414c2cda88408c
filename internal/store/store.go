package store

import (
	"context"
	"errors"

	"garu-data-service/internal/domain/journeys"
	"garu-data-service/internal/domain/players"
)

// ErrUnavailable marks a durable store that is unreachable or rejected the operation.
var ErrUnavailable = errors.New("durable store unavailable")

// BatchSize caps the number of rows sent per upsert round trip.
const BatchSize = 100

// PlayerStore persists roster records keyed by player id.
type PlayerStore interface {
	UpsertPlayers(ctx context.Context, roster players.Roster) error
	ListPlayers(ctx context.Context) (players.Roster, error)
}

// JourneyStore persists journey records keyed by player id.
type JourneyStore interface {
	UpsertJourneys(ctx context.Context, records []journeys.Record) error
	ListJourneys(ctx context.Context) ([]journeys.Record, error)
}

// Durable is a store that serves both tables.
type Durable interface {
	PlayerStore
	JourneyStore
}
