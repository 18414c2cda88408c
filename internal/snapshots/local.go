package snapshots

import "github.com/jonboulle/clockwork"

// Local pairs the reader and writer for one snapshot directory.
type Local struct {
	*FSStore
	writer *Writer
}

// NewLocal constructs a Local rooted at basePath.
func NewLocal(basePath string, clock clockwork.Clock) *Local {
	return &Local{FSStore: NewFSStore(basePath), writer: NewWriter(basePath, clock)}
}

// WriteRoster delegates to the writer.
func (l *Local) WriteRoster(doc RosterDocument) error {
	return l.writer.WriteRoster(doc)
}

// WriteJourneys delegates to the writer.
func (l *Local) WriteJourneys(doc JourneyDocument) error {
	return l.writer.WriteJourneys(doc)
}
