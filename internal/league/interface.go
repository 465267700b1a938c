package league

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	EnsurePlayersTable() error
	ClearPlayers() error
	InsertPlayer(values []any) error
	CountPlayers() (int, error)
	QueryStats(filters Filters) ([]StatsRow, error)
	RecordImportRun(run ImportRun) error
	ListImportRuns() ([]ImportRun, error)
}
