package graph

import (
	"context"
	"maps"
	"sync"
)

// Mode tells reads from writes in recorded calls.
type Mode string

const (
	ModeRead  Mode = "read"
	ModeWrite Mode = "write"
)

// ExecutedQuery records one statement sent to a MemoryClient.
type ExecutedQuery struct {
	Mode   Mode
	Query  string
	Params map[string]any
}

// MemoryClient is a scripted Client for tests. Results are queued per mode
// and handed out in order; an empty queue yields an empty Result.
type MemoryClient struct {
	mu           sync.Mutex
	calls        []ExecutedQuery
	queued       map[Mode][]Result
	err          error
	connectivity error
	closed       bool
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{queued: make(map[Mode][]Result)}
}

// WithError makes every subsequent query fail with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithConnectivityError makes VerifyConnectivity fail with err.
func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

// Queue appends a result for the next query in the given mode.
func (m *MemoryClient) Queue(mode Mode, res Result) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued[mode] = append(m.queued[mode], res)
	return m
}

func (m *MemoryClient) ExecuteWrite(_ context.Context, cypher string, params map[string]any) (Result, error) {
	return m.execute(ModeWrite, cypher, params)
}

func (m *MemoryClient) ExecuteRead(_ context.Context, cypher string, params map[string]any) (Result, error) {
	return m.execute(ModeRead, cypher, params)
}

func (m *MemoryClient) execute(mode Mode, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return Result{}, m.err
	}
	m.calls = append(m.calls, ExecutedQuery{Mode: mode, Query: cypher, Params: maps.Clone(params)})

	queue := m.queued[mode]
	if len(queue) == 0 {
		return Result{}, nil
	}
	m.queued[mode] = queue[1:]
	return queue[0], nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MemoryClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Calls returns the recorded queries for a mode, oldest first.
func (m *MemoryClient) Calls(mode Mode) []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ExecutedQuery
	for _, c := range m.calls {
		if c.Mode == mode {
			out = append(out, c)
		}
	}
	return out
}
