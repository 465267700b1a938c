package league

import "sync"

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	EnsurePlayersTableFunc func() error
	ClearPlayersFunc       func() error
	InsertPlayerFunc       func(values []any) error
	CountPlayersFunc       func() (int, error)
	QueryStatsFunc         func(filters Filters) ([]StatsRow, error)
	RecordImportRunFunc    func(run ImportRun) error
	ListImportRunsFunc     func() ([]ImportRun, error)

	// Call records
	InsertPlayerCalls    [][]any
	ClearPlayersCalls    int
	QueryStatsCalls      []Filters
	RecordImportRunCalls []ImportRun
}

var _ LeagueStore = (*MockStore)(nil)

// NewMock creates a new MockStore.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) EnsurePlayersTable() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EnsurePlayersTableFunc != nil {
		return m.EnsurePlayersTableFunc()
	}
	return nil
}

func (m *MockStore) ClearPlayers() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearPlayersCalls++
	if m.ClearPlayersFunc != nil {
		return m.ClearPlayersFunc()
	}
	return nil
}

func (m *MockStore) InsertPlayer(values []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertPlayerCalls = append(m.InsertPlayerCalls, values)
	if m.InsertPlayerFunc != nil {
		return m.InsertPlayerFunc(values)
	}
	return nil
}

func (m *MockStore) CountPlayers() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountPlayersFunc != nil {
		return m.CountPlayersFunc()
	}
	return len(m.InsertPlayerCalls), nil
}

func (m *MockStore) QueryStats(filters Filters) ([]StatsRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryStatsCalls = append(m.QueryStatsCalls, filters)
	if m.QueryStatsFunc != nil {
		return m.QueryStatsFunc(filters)
	}
	return []StatsRow{}, nil
}

func (m *MockStore) RecordImportRun(run ImportRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordImportRunCalls = append(m.RecordImportRunCalls, run)
	if m.RecordImportRunFunc != nil {
		return m.RecordImportRunFunc(run)
	}
	return nil
}

func (m *MockStore) ListImportRuns() ([]ImportRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListImportRunsFunc != nil {
		return m.ListImportRunsFunc()
	}
	return []ImportRun{}, nil
}
