// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int64
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount.Add(1)
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	started chan struct{}
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	close(b.started)
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}
	ws.Run(context.Background())

	ws = NewWorkers(nil, &mockWorker{})
	ws.Run(context.Background())
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	b1 := &blockingWorker{started: make(chan struct{})}
	b2 := &blockingWorker{started: make(chan struct{})}
	ws := NewWorkers(b1, b2)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ws.Run(ctx)
	}()

	// both must be running at the same time
	for i, b := range []*blockingWorker{b1, b2} {
		select {
		case <-b.started:
		case <-time.After(time.Second):
			t.Fatalf("worker[%d] was not started", i)
		}
	}

	cancel()
	wg.Wait()

	if !b1.stopped.Load() || !b2.stopped.Load() {
		t.Error("expected Run to wait for every worker to stop")
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Run(context.Background())

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 runs, got %d", got)
	}
}
