// Package sheets defines the remote tabular store contract and a client for
// the Google Sheets values API.
package sheets

import "context"

// Store is a key-range tabular store. Ranges use A1 notation
// ("Quests!A2:K1000"); rows are ordered lists of cell strings.
type Store interface {
	// Probe performs a no-op read to check credentials and reachability.
	Probe(ctx context.Context) error
	// Read returns the rows inside rng. Trailing empty cells may be omitted.
	Read(ctx context.Context, rng string) ([][]string, error)
	// Write overwrites exactly the cells addressed by rng.
	Write(ctx context.Context, rng string, rows [][]string) error
	// Append adds row after the existing data of rng's tab.
	Append(ctx context.Context, rng string, row []string) error
}
