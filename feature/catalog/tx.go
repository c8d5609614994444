package catalog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// txState tags the lifecycle of one optimistic operation.
type txState string

const (
	// txPending: local mutation applied, remote call in flight.
	txPending txState = "pending"
	// txCommitted: remote call succeeded, local state finalized with
	// server-authoritative data.
	txCommitted txState = "committed"
	// txRolledBack: remote call failed, local state restored to the
	// pre-mutation snapshot.
	txRolledBack txState = "rolled_back"
)

// tx is one optimistic transaction. Each operation owns exactly one, along
// with its own undo snapshot; transactions are independent and unordered
// with respect to each other.
type tx struct {
	id    uuid.UUID
	op    string
	state txState
}

func beginTx(op string) *tx {
	return &tx{id: uuid.New(), op: op, state: txPending}
}

func (t *tx) commit() {
	if t.state == txPending {
		t.state = txCommitted
	}
}

func (t *tx) rollback() {
	if t.state == txPending {
		t.state = txRolledBack
	}
}

// fields returns the transaction's log correlation fields.
func (t *tx) fields() []zap.Field {
	return []zap.Field{
		zap.String("tx_id", t.id.String()),
		zap.String("op", t.op),
		zap.String("state", string(t.state)),
	}
}
