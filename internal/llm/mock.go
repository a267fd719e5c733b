package llm

import "context"

// MockGenerator is a canned-response Generator for tests.
type MockGenerator struct {
	// Response returned for every call when Fail is false.
	Response string
	// Fail forces every call to error.
	Fail bool

	// Calls records the messages and model keys seen.
	Calls []MockCall
}

// MockCall is one recorded Generate invocation.
type MockCall struct {
	Message string
	Model   string
}

var _ Generator = (*MockGenerator)(nil)

// Generate returns the canned response or a forced failure.
func (m *MockGenerator) Generate(_ context.Context, message string, spec ModelSpec) (string, error) {
	m.Calls = append(m.Calls, MockCall{Message: message, Model: spec.Key})
	if m.Fail {
		return "", context.DeadlineExceeded
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "mock reply to: " + message, nil
}
