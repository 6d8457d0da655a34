package notify

import "context"

// MockSender implements Sender for testing. It records every message and
// answers with SendFunc, or success when SendFunc is nil.
type MockSender struct {
	SendFunc func(ctx context.Context, msg Message) (bool, error)
	Sent     []Message
}

// Send records msg and returns the configured result
func (m *MockSender) Send(ctx context.Context, msg Message) (bool, error) {
	m.Sent = append(m.Sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return true, nil
}

// FailFirst returns a SendFunc that rejects the first n sends and accepts the rest
func FailFirst(n int) func(context.Context, Message) (bool, error) {
	calls := 0
	return func(context.Context, Message) (bool, error) {
		calls++
		return calls > n, nil
	}
}

var _ Sender = (*MockSender)(nil)
