package mocks

import "context"

// MockTxManager mimics commit/rollback bookkeeping without a database.
type MockTxManager struct {
	Commits   int
	Rollbacks int
}

func (m *MockTxManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *MockTxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *MockTxManager) run(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.Rollbacks++
		return err
	}
	m.Commits++
	return nil
}
