package transition_test

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

func TestOnceFiresOnce(t *testing.T) {
	calls := 0
	fn := transition.Once(func() { calls++ })

	fn()
	fn()
	fn()

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// nil is tolerated
	transition.Once(nil)()
}

func TestImmediateRunsBodyBeforeDone(t *testing.T) {
	var order []string

	transition.Immediate{}.Commit(
		func() { order = append(order, "done") },
		func() { order = append(order, "body") },
	)

	if fmt.Sprint(order) != "[body done]" {
		t.Fatalf("order = %v", order)
	}
}

func TestTransactionsWithoutHoldsCompleteOnCommit(t *testing.T) {
	tx := transition.NewTransactions()
	fired := 0

	tx.Commit(func() { fired++ }, func() {})

	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if tx.Depth() != 0 {
		t.Fatalf("depth = %d after commit", tx.Depth())
	}
}

func TestTransactionsWaitForEveryHold(t *testing.T) {
	tx := transition.NewTransactions()
	fired := 0

	var releases []func()
	tx.Commit(func() { fired++ }, func() {
		releases = append(releases, tx.Hold(), tx.Hold())
	})

	if fired != 0 {
		t.Fatal("done fired while holds were outstanding")
	}

	releases[0]()
	releases[0]()
	if fired != 0 {
		t.Fatal("double release of one hold completed the transaction")
	}

	releases[1]()
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTransactionsNestedHoldDelaysOuter(t *testing.T) {
	tx := transition.NewTransactions()
	var order []string
	var release func()

	tx.Commit(func() { order = append(order, "outer") }, func() {
		tx.Commit(func() { order = append(order, "inner") }, func() {
			release = tx.Hold()
		})
	})

	if len(order) != 0 {
		t.Fatalf("completed early: %v", order)
	}

	release()

	if fmt.Sprint(order) != "[inner outer]" {
		t.Fatalf("order = %v", order)
	}
}

func TestHoldOutsideTransactionIsNoop(t *testing.T) {
	tx := transition.NewTransactions()
	tx.Hold()()
}

func ExampleTransactions() {
	tx := transition.NewTransactions()

	var finishAnimation func()
	tx.Commit(func() { fmt.Println("transition finished") }, func() {
		fmt.Println("push")
		finishAnimation = tx.Hold()
	})

	fmt.Println("animating")
	finishAnimation()

	// Output:
	// push
	// animating
	// transition finished
}
