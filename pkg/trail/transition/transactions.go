package transition

// Holder lets work started inside a committed body delay the completion
// signal until it finishes.
type Holder interface {
	// Hold attaches pending work to every open transaction.
	// The returned release must be called once the work is done.
	Hold() (release func())
}

// Transactions is a Committer modelled on toolkit animation transactions.
//
// Commit opens a transaction, runs the body and closes it. Anything the body
// starts that finishes later (an animation, a deferred layout pass) calls Hold
// and releases when finished; done fires once the transaction is closed and
// every hold is released. Transactions nest: a hold taken inside an inner
// Commit also delays every enclosing transaction.
//
// Transactions is not safe for concurrent use. Like the rest of the
// navigation engine it expects a single serial caller.
type Transactions struct {
	open []*transaction
}

type transaction struct {
	done      func()
	holds     int
	committed bool
}

// NewTransactions creates a committer with no open transaction.
func NewTransactions() *Transactions {
	return &Transactions{}
}

func (t *Transactions) Commit(done func(), body func()) {
	tx := &transaction{done: Once(done)}
	t.open = append(t.open, tx)

	body()

	t.open = t.open[:len(t.open)-1]
	tx.committed = true
	tx.settle()
}

func (t *Transactions) Hold() (release func()) {
	if len(t.open) == 0 {
		return func() {}
	}

	held := make([]*transaction, len(t.open))
	copy(held, t.open)
	for _, tx := range held {
		tx.holds++
	}

	// Innermost first, so nested completions fire before enclosing ones.
	return Once(func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].holds--
			held[i].settle()
		}
	})
}

// Depth reports how many transactions are currently open.
func (t *Transactions) Depth() int {
	return len(t.open)
}

func (tx *transaction) settle() {
	if tx.committed && tx.holds == 0 {
		tx.done()
	}
}
