package standings

import "context"

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	FetchRawFunc   func(ctx context.Context) ([]byte, error)
	FetchTableFunc func(ctx context.Context) ([]TeamStanding, error)

	FetchRawCalls   int
	FetchTableCalls int
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) FetchRaw(ctx context.Context) ([]byte, error) {
	m.FetchRawCalls++
	if m.FetchRawFunc != nil {
		return m.FetchRawFunc(ctx)
	}
	return []byte("[]"), nil
}

func (m *MockClient) FetchTable(ctx context.Context) ([]TeamStanding, error) {
	m.FetchTableCalls++
	if m.FetchTableFunc != nil {
		return m.FetchTableFunc(ctx)
	}
	return []TeamStanding{}, nil
}
