package database

import (
	"context"
	"sync"
)

// MemoryBackend keeps the document in process memory. Used for tests and
// throwaway runs.
type MemoryBackend struct {
	mu       sync.Mutex
	document []byte
	err      error
}

func NewMemoryBackend(document []byte) *MemoryBackend {
	return &MemoryBackend{document: document}
}

func (m *MemoryBackend) Read(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.document == nil {
		return nil, ErrNotExist
	}
	return append([]byte(nil), m.document...), nil
}

func (m *MemoryBackend) Write(_ context.Context, document []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.document = append([]byte(nil), document...)
	return nil
}

// FailWrites makes every following Write return err, nil restores writes.
func (m *MemoryBackend) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Document returns a copy of the stored bytes.
func (m *MemoryBackend) Document() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.document...)
}

func (m *MemoryBackend) Close() error {
	return nil
}

func (m *MemoryBackend) String() string {
	return "memory"
}
