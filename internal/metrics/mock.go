package metrics

import "sync"

// Mock is a no-op Metrics implementation that records call counts for tests.
type Mock struct {
	mu sync.Mutex

	ImportRunsCalls      int
	RowsInserted         int
	RowsSkipped          int
	ImportDurations      []float64
	StandingsFetchCalls  int
	StandingsFetchFailed int
	PageRenderCalls      int
	StartupTimeLastValue float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock metrics collector.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncImportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportRunsCalls++
}

func (m *Mock) AddImportRowsInserted(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsInserted += n
}

func (m *Mock) AddImportRowsSkipped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RowsSkipped += n
}

func (m *Mock) ObserveImportDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImportDurations = append(m.ImportDurations, seconds)
}

func (m *Mock) IncStandingsFetches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsFetchCalls++
}

func (m *Mock) IncStandingsFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsFetchFailed++
}

func (m *Mock) IncPageRenders() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PageRenderCalls++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimeLastValue = seconds
}
