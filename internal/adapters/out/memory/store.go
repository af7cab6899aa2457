// Package memory provides an in-process backing for the order record store.
//
// The Store owns the canonical order table and guards it with a single
// table-level lock. Writes go through a UnitOfWork, which stages changes and
// applies them in one step on Commit, so a failed or abandoned unit of work
// never leaves partial state behind. Every order handed out is a clone.
package memory

import (
	"context"
	"sort"
	"sync"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

type row struct {
	order *order.Order
	seq   uint64
}

// Store is the in-memory order table.
type Store struct {
	mu   sync.RWMutex
	rows map[string]row
	seq  uint64
}

// NewStore creates an empty order table.
func NewStore() *Store {
	return &Store{rows: make(map[string]row)}
}

// Get retrieves a committed order by id.
func (s *Store) Get(_ context.Context, id string) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return r.order.Clone(), nil
}

// List returns committed orders by createdAt, then insertion order.
func (s *Store) List(_ context.Context, filter ports.ListFilter) ([]*order.Order, error) {
	s.mu.RLock()
	rows := make([]row, 0, len(s.rows))
	for _, r := range s.rows {
		rows = append(rows, r)
	}
	s.mu.RUnlock()

	return sortAndFilter(rows, filter), nil
}

// Len returns the number of committed orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// apply validates every staged change against the committed table and then
// applies all of them, or none.
func (s *Store) apply(changes []change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := make(map[string]bool, len(changes))
	for _, c := range changes {
		present, seen := exists[c.id]
		if !seen {
			_, present = s.rows[c.id]
		}
		switch c.kind {
		case changeAdd:
			if present {
				return errs.NewObjectAlreadyExistsError("order", c.id)
			}
			exists[c.id] = true
		case changeUpdate:
			if !present {
				return errs.NewObjectNotFoundError("order", c.id)
			}
		case changeDelete:
			if !present {
				return errs.NewObjectNotFoundError("order", c.id)
			}
			exists[c.id] = false
		}
	}

	for _, c := range changes {
		switch c.kind {
		case changeAdd:
			s.seq++
			s.rows[c.id] = row{order: c.order.Clone(), seq: s.seq}
		case changeUpdate:
			r := s.rows[c.id]
			r.order = c.order.Clone()
			s.rows[c.id] = r
		case changeDelete:
			delete(s.rows, c.id)
		}
	}
	return nil
}

// view returns the committed table with staged changes laid over it, for
// reads made inside a unit of work.
func (s *Store) view(changes []change) map[string]row {
	s.mu.RLock()
	rows := make(map[string]row, len(s.rows)+len(changes))
	for id, r := range s.rows {
		rows[id] = r
	}
	next := s.seq
	s.mu.RUnlock()

	for _, c := range changes {
		switch c.kind {
		case changeAdd:
			next++
			rows[c.id] = row{order: c.order, seq: next}
		case changeUpdate:
			if r, ok := rows[c.id]; ok {
				r.order = c.order
				rows[c.id] = r
			}
		case changeDelete:
			delete(rows, c.id)
		}
	}
	return rows
}

func sortAndFilter(rows []row, filter ports.ListFilter) []*order.Order {
	sort.Slice(rows, func(i, j int) bool {
		ci, cj := rows[i].order.CreatedAt(), rows[j].order.CreatedAt()
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]*order.Order, 0, len(rows))
	for _, r := range rows {
		if filter.Status != order.Unknown && r.order.Status() != filter.Status {
			continue
		}
		out = append(out, r.order.Clone())
	}
	return out
}
