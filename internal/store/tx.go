package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examprep/ent"
)

// InTx runs fn inside a single transaction. Repositories obtained from the
// Store use the transaction automatically when called with the ctx passed to
// fn. If ctx already carries a transaction, fn joins it and the outermost
// InTx decides whether to commit. A returned error or a panic rolls back.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ent.TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(ent.NewTxContext(ctx, tx)); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// clientFor returns the client bound to the transaction carried by ctx, or
// the root client outside a transaction.
func (s *Store) clientFor(ctx context.Context) *ent.Client {
	if tx := ent.TxFromContext(ctx); tx != nil {
		return tx.Client()
	}
	return s.client
}
