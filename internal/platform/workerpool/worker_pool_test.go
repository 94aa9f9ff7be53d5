// internal/platform/workerpool/worker_pool_test.go
package workerpool

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/platform/errors"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

type fakeTask struct {
	name    string
	cost    uint64
	fail    bool
	counter *atomic.Int64
}

func (t *fakeTask) Execute(ctx context.Context) error {
	if t.counter != nil {
		t.counter.Add(1)
	}
	if t.fail {
		return errors.New("boom")
	}
	return nil
}

func (t *fakeTask) Cost() uint64 { return t.cost }
func (t *fakeTask) Name() string { return t.name }

func TestSubmitRunsAllTasks(t *testing.T) {
	var counter atomic.Int64
	pool := NewWorkerPool(WorkerPoolConfig{
		Workers: 3,
		Logger:  testutil.NewTestLogger(),
	})
	pool.Start()
	defer pool.Stop()

	tasks := []Task{
		&fakeTask{name: "a", cost: 3, counter: &counter},
		&fakeTask{name: "b", cost: 1, counter: &counter},
		&fakeTask{name: "c", cost: 2, counter: &counter},
	}
	results := pool.Submit(tasks)

	testutil.AssertEqual(t, len(results), 3, "result count")
	testutil.AssertEqual(t, counter.Load(), int64(3), "all tasks executed")
	for _, r := range results {
		testutil.AssertNoError(t, r.Error, "task "+r.Task.Name())
	}
}

func TestSubmitEmptyTaskList(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Workers: 2, Logger: testutil.NewTestLogger()})
	pool.Start()
	defer pool.Stop()

	results := pool.Submit(nil)
	testutil.AssertEqual(t, len(results), 0, "no results for empty submit")
}

func TestSubmitCollectsErrors(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Workers: 2, Logger: testutil.NewTestLogger()})
	pool.Start()
	defer pool.Stop()

	results := pool.Submit([]Task{
		&fakeTask{name: "ok", cost: 1},
		&fakeTask{name: "bad", cost: 1, fail: true},
	})

	testutil.AssertEqual(t, len(results), 2, "result count")
	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
		}
	}
	testutil.AssertEqual(t, failures, 1, "exactly one failed task")
}

func TestCostSchedulerAscending(t *testing.T) {
	s := NewCostScheduler()
	tasks := []Task{
		&fakeTask{name: "big", cost: 100},
		&fakeTask{name: "small", cost: 1},
		&fakeTask{name: "mid", cost: 50},
	}
	scheduled := s.Schedule(tasks)

	testutil.AssertEqual(t, scheduled[0].Name(), "small", "cheapest first")
	testutil.AssertEqual(t, scheduled[1].Name(), "mid", "mid second")
	testutil.AssertEqual(t, scheduled[2].Name(), "big", "most expensive last")
	// El slice original no debe mutar.
	testutil.AssertEqual(t, tasks[0].Name(), "big", "input untouched")
}

func TestCostSchedulerStableOnTies(t *testing.T) {
	s := NewCostScheduler()
	tasks := []Task{
		&fakeTask{name: "first", cost: 7},
		&fakeTask{name: "second", cost: 7},
	}
	scheduled := s.Schedule(tasks)
	testutil.AssertEqual(t, scheduled[0].Name(), "first", "arrival order kept on equal cost")
}

func TestFIFOSchedulerKeepsOrder(t *testing.T) {
	s := NewFIFOScheduler()
	tasks := []Task{
		&fakeTask{name: "a", cost: 9},
		&fakeTask{name: "b", cost: 1},
	}
	scheduled := s.Schedule(tasks)
	testutil.AssertEqual(t, scheduled[0].Name(), "a", "fifo order")
	testutil.AssertEqual(t, scheduled[1].Name(), "b", "fifo order")
}

func TestDefaultsApplied(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{Logger: testutil.NewTestLogger()})
	stats := pool.Stats()
	testutil.AssertEqual(t, stats.Workers, 4, "default workers")
	testutil.AssertEqual(t, stats.SchedulerName, "cost", "default scheduler")
}
