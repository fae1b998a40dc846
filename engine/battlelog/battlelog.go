// Package battlelog accumulates the broadcast record of a battle and
// dumps it to disk as JSON. Only battle-level broadcasts land here;
// per-character narration goes to the display alone.
package battlelog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathoo/raidcore/types"
)

// Log is an append-only sequence of battle records.
type Log struct {
	records []types.Record
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Record appends one entry.
func (l *Log) Record(msg string) {
	l.records = append(l.records, types.Record{Msg: msg})
}

// Records returns a copy of the entries so far.
func (l *Log) Records() []types.Record {
	out := make([]types.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len reports the number of entries.
func (l *Log) Len() int { return len(l.records) }

// Dump writes the log to path as an indented JSON array.
func (l *Log) Dump(path string) error {
	data, err := json.MarshalIndent(l.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding battle log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing battle log: %w", err)
	}
	return nil
}
