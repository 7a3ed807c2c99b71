package repository

import (
	"fmt"
	"sync"
	"time"

	"calcutta-auction/internal/auctionerrors"
	model "calcutta-auction/internal/models"
)

// AuctionStore defines the event storage interface for the auction engine.
// UpdateEvent is the transaction boundary: the mutation closure runs under
// the event's lock against a private copy, so read-validate-write is one
// atomic unit and a failed closure leaves the stored state untouched.
type AuctionStore interface {
	CreateEvent(ev *model.Event) error
	GetEvent(eventID string) (*model.Event, error)
	UpdateEvent(eventID string, fn func(ev *model.Event) error) error
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore
type MemoryRepo struct {
	mu     sync.RWMutex
	events map[string]*eventRecord // key: eventID
}

type eventRecord struct {
	mu sync.Mutex
	ev *model.Event
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		events: make(map[string]*eventRecord),
	}
}

// CreateEvent stores a new event aggregate
func (r *MemoryRepo) CreateEvent(ev *model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[ev.EventID]; ok {
		return fmt.Errorf("create event %s: already exists", ev.EventID)
	}
	r.events[ev.EventID] = &eventRecord{ev: cloneEvent(ev)}
	return nil
}

// GetEvent returns a deep-copy snapshot of the event
func (r *MemoryRepo) GetEvent(eventID string) (*model.Event, error) {
	rec, err := r.record(eventID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return cloneEvent(rec.ev), nil
}

// UpdateEvent runs fn against a copy of the event under the event's lock and
// commits the copy only if fn succeeds. Two concurrent updates on the same
// event are applied as a total order; the second observes the first's result.
func (r *MemoryRepo) UpdateEvent(eventID string, fn func(ev *model.Event) error) error {
	rec, err := r.record(eventID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	next := cloneEvent(rec.ev)
	if err := fn(next); err != nil {
		return err
	}
	rec.ev = next
	return nil
}

func (r *MemoryRepo) record(eventID string) (*eventRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.events[eventID]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", eventID, auctionerrors.ErrEventNotFound)
	}
	return rec, nil
}

// cloneEvent deep-copies an event aggregate so callers can never alias
// stored state.
func cloneEvent(ev *model.Event) *model.Event {
	out := *ev

	out.RuleSet.RoundAllocations = append([]model.RoundAllocation(nil), ev.RuleSet.RoundAllocations...)
	out.Players = append([]model.Player(nil), ev.Players...)
	out.Bids = append([]model.Bid(nil), ev.Bids...)
	out.Sales = append([]model.Sale(nil), ev.Sales...)
	out.Ledger = append([]model.LedgerEntry(nil), ev.Ledger...)

	out.Lots = make([]model.Lot, len(ev.Lots))
	for i, lot := range ev.Lots {
		lot.OpenedAt = cloneTime(lot.OpenedAt)
		lot.ClosesAt = cloneTime(lot.ClosesAt)
		lot.PausedAt = cloneTime(lot.PausedAt)
		out.Lots[i] = lot
	}
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
