package fakes

import "context"

// Snapshotter captures repository state and returns a func that restores it.
type Snapshotter interface {
	Snapshot() (restore func())
}

// Transactor runs fn and restores every registered repository when fn fails.
type Transactor struct {
	Calls     int
	Rollbacks int
	Repos     []Snapshotter
}

func NewTransactor(repos ...Snapshotter) *Transactor {
	return &Transactor{Repos: repos}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	restores := make([]func(), 0, len(t.Repos))
	for _, r := range t.Repos {
		restores = append(restores, r.Snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		t.Rollbacks++
		return err
	}
	return nil
}
