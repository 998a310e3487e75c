package metrics

// MockMetrics is a value that provides a wrapper around Mock
// metrics for counting events in the system.
type MockMetrics struct {
	APICalls       int
	FailedAPICalls int
	Names          []string
}

// NewMock creates and returns a MockMetrics.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

// CountAPICall records outgoing API calls to upstream services.
func (m *MockMetrics) CountAPICall(name string) {
	m.APICalls++
	m.Names = append(m.Names, name)
}

// CountFailedAPICall records failed API calls to upstream services.
func (m *MockMetrics) CountFailedAPICall(name string) {
	m.FailedAPICalls++
}
