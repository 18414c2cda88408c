package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// FakeClockAt returns a clockwork fake clock fixed at the provided time.
func FakeClockAt(t time.Time) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(t)
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
