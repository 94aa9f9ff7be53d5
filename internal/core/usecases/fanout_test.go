// internal/core/usecases/fanout_test.go
package usecases

import (
	"context"
	"math/big"
	"testing"

	"github.com/DULA2025/RSA-Factorization/internal/core/domain"
	"github.com/DULA2025/RSA-Factorization/internal/testutil"
)

func tasksFor(n int64, primes ...uint64) []domain.ProbeTask {
	tasks := make([]domain.ProbeTask, 0, len(primes))
	for _, p := range primes {
		tasks = append(tasks, domain.NewProbeTask(p, 1, big.NewInt(n)))
	}
	return tasks
}

func TestExecuteEmptyTaskListSkipsDispatch(t *testing.T) {
	runner := &mockRunner{}
	f := NewProbeFanOut(runner, 4, testutil.NewTestLogger())

	report := f.Execute(context.Background(), nil)
	testutil.AssertEqual(t, report.Factors.Len(), 0, "empty set")
	testutil.AssertEqual(t, report.Dispatched, 0, "nothing dispatched")
	testutil.AssertEqual(t, runner.calls.Load(), int64(0), "no worker invoked")
}

func TestExecuteMergesUnion(t *testing.T) {
	runner := &mockRunner{
		factorsByPrime: map[uint64][]*big.Int{
			11: {big.NewInt(21)},
			13: {big.NewInt(21), big.NewInt(12)}, // 21 duplicado entre probes
			17: nil,
		},
	}
	f := NewProbeFanOut(runner, 4, testutil.NewTestLogger())

	report := f.Execute(context.Background(), tasksFor(252, 11, 13, 17))
	testutil.AssertEqual(t, report.Dispatched, 3, "all tasks dispatched")
	testutil.AssertEqual(t, report.Factors.Len(), 2, "union deduplicates")
	testutil.AssertTrue(t, report.Factors.Contains(big.NewInt(21)), "21 in set")
	testutil.AssertTrue(t, report.Factors.Contains(big.NewInt(12)), "12 in set")
}

func TestExecuteAbsorbsProbeFailures(t *testing.T) {
	runner := &mockRunner{
		factorsByPrime: map[uint64][]*big.Int{13: {big.NewInt(21)}},
		failFor:        map[uint64]bool{11: true},
	}
	f := NewProbeFanOut(runner, 2, testutil.NewTestLogger())

	report := f.Execute(context.Background(), tasksFor(42, 11, 13))
	testutil.AssertEqual(t, report.Failed, 1, "one failure counted")
	testutil.AssertEqual(t, report.Factors.Len(), 1, "surviving probe merged")
}

func TestExecuteCountsSkips(t *testing.T) {
	runner := &mockRunner{}
	f := NewProbeFanOut(runner, 2, testutil.NewTestLogger())

	// k=2 siempre cortocircuita a skip en el runner.
	tasks := []domain.ProbeTask{
		domain.NewProbeTask(11, 2, big.NewInt(42)),
		domain.NewProbeTask(13, 2, big.NewInt(42)),
	}
	report := f.Execute(context.Background(), tasks)
	testutil.AssertEqual(t, report.Skipped, 2, "extension fields skipped")
	testutil.AssertEqual(t, report.Factors.Len(), 0, "no factors from skips")
}

func TestExecuteWorkerCapClampedToTasks(t *testing.T) {
	runner := &mockRunner{
		factorsByPrime: map[uint64][]*big.Int{11: {big.NewInt(21)}},
	}
	// Más workers que tasks: no debe bloquearse ni fallar.
	f := NewProbeFanOut(runner, 32, testutil.NewTestLogger())
	report := f.Execute(context.Background(), tasksFor(42, 11))
	testutil.AssertEqual(t, report.Dispatched, 1, "single task dispatched")
	testutil.AssertTrue(t, report.Factors.Contains(big.NewInt(21)), "factor merged")
}
