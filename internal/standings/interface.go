package standings

import "context"

// Client fetches the team standings published by the league's spreadsheet
// backend.
type Client interface {
	// FetchRaw returns the upstream JSON body verbatim, for pass-through
	// serving. The body is only accepted when the upstream answered 200
	// with something that looks like JSON.
	FetchRaw(ctx context.Context) ([]byte, error)
	// FetchTable fetches and normalizes the standings grid.
	FetchTable(ctx context.Context) ([]TeamStanding, error)
}
