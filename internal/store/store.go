// Package store owns the canonical in-memory slots (expenses, goals,
// balance, user profile) and pairs every mutation with a persistence write.
//
// Consistency contract: the in-memory slot always reflects the latest
// accepted mutation. A failed persistence write is returned as a non-fatal
// *core.AdapterError and the in-memory state is NOT reverted; the caller
// decides whether to retry or roll back. Mutations to the same slot are
// serialized, so each one observes the result of its predecessor.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/kv"
	"fintrack/internal/log"
)

// Slot keys in the persistence adapter, one per slot.
const (
	KeyExpenses = "expenses"
	KeyGoals    = "goals"
	KeyBalance  = "balance"
	KeyUser     = "user"
)

const defaultPersistTimeout = 5 * time.Second

type (
	// Event announces that a slot now holds a new value. Consumers re-read
	// the slot; whole-collection replacement, no diff.
	Event struct {
		Slot string
	}

	// Subscriber receives an Event after every accepted mutation.
	Subscriber func(Event)

	// Notifier forwards slot changes to an external transport.
	Notifier interface {
		PublishSlotChanged(ctx context.Context, slot string) error
	}

	Store struct {
		adapter        kv.Adapter
		logger         *log.Logger
		persistTimeout time.Duration

		expensesMu sync.Mutex
		expenses   []core.Expense

		goalsMu sync.Mutex
		goals   []core.Goal

		balanceMu sync.Mutex
		balance   float64

		userMu sync.Mutex
		user   core.UserProfile

		subMu sync.Mutex
		subs  []Subscriber
	}
)

func New(adapter kv.Adapter, logger *log.Logger, persistTimeout time.Duration) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	if persistTimeout <= 0 {
		persistTimeout = defaultPersistTimeout
	}
	return &Store{
		adapter:        adapter,
		logger:         logger.WithComponent(log.ComponentStore),
		persistTimeout: persistTimeout,
	}
}

// Load hydrates all four slots from the adapter concurrently. A missing key
// leaves the slot at its default without error. A read or decode failure also
// leaves the default, but is collected into the returned (joined, non-fatal)
// error; the remaining slots still hydrate.
func (s *Store) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var errs []error
	report := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	g.Go(func() error {
		var expenses []core.Expense
		if err := s.loadSlot(ctx, KeyExpenses, &expenses); err != nil {
			report(err)
			return nil
		}
		s.expensesMu.Lock()
		s.expenses = expenses
		s.expensesMu.Unlock()
		return nil
	})
	g.Go(func() error {
		var goals []core.Goal
		if err := s.loadSlot(ctx, KeyGoals, &goals); err != nil {
			report(err)
			return nil
		}
		s.goalsMu.Lock()
		s.goals = goals
		s.goalsMu.Unlock()
		return nil
	})
	g.Go(func() error {
		balance, err := s.loadBalance(ctx)
		if err != nil {
			report(err)
			return nil
		}
		s.balanceMu.Lock()
		s.balance = balance
		s.balanceMu.Unlock()
		return nil
	})
	g.Go(func() error {
		var user core.UserProfile
		if err := s.loadSlot(ctx, KeyUser, &user); err != nil {
			report(err)
			return nil
		}
		s.userMu.Lock()
		s.user = user
		s.userMu.Unlock()
		return nil
	})

	g.Wait()

	for _, err := range errs {
		s.logger.WarnContext(ctx, "Slot fell back to default on load", log.FieldError, err.Error())
	}
	return errors.Join(errs...)
}

func (s *Store) loadSlot(ctx context.Context, key string, dst any) error {
	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	raw, ok, err := s.adapter.Get(ctx, key)
	if err != nil {
		return &core.AdapterError{Slot: key, Op: log.OpGet, Err: err}
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &core.AdapterError{Slot: key, Op: "decode", Err: err}
	}
	return nil
}

func (s *Store) loadBalance(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	raw, ok, err := s.adapter.Get(ctx, KeyBalance)
	if err != nil {
		return 0, &core.AdapterError{Slot: KeyBalance, Op: log.OpGet, Err: err}
	}
	if !ok {
		return 0, nil
	}
	balance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &core.AdapterError{Slot: KeyBalance, Op: "decode", Err: err}
	}
	return balance, nil
}

// AddExpense validates and appends an expense, then persists the whole
// collection. Insertion order is preserved. Returns the updated collection;
// a non-nil *core.AdapterError means the mutation is held in memory only.
func (s *Store) AddExpense(ctx context.Context, e core.Expense) ([]core.Expense, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	s.expensesMu.Lock()
	for _, existing := range s.expenses {
		if existing.ID == e.ID {
			s.expensesMu.Unlock()
			return nil, core.ErrDuplicateID
		}
	}
	s.expenses = append(s.expenses, e)
	updated := copyExpenses(s.expenses)
	persistErr := s.persistJSON(ctx, KeyExpenses, s.expenses)
	s.expensesMu.Unlock()

	s.notify(KeyExpenses)
	return updated, persistErr
}

// DeleteExpense removes the expense with the given id. An unknown id returns
// core.ErrNotFound and leaves both memory and persistence untouched, which
// makes a repeated delete report "nothing changed" instead of failing hard.
func (s *Store) DeleteExpense(ctx context.Context, id string) ([]core.Expense, error) {
	s.expensesMu.Lock()
	idx := -1
	for i, e := range s.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		updated := copyExpenses(s.expenses)
		s.expensesMu.Unlock()
		return updated, core.ErrNotFound
	}
	s.expenses = append(s.expenses[:idx], s.expenses[idx+1:]...)
	updated := copyExpenses(s.expenses)
	persistErr := s.persistJSON(ctx, KeyExpenses, s.expenses)
	s.expensesMu.Unlock()

	s.notify(KeyExpenses)
	return updated, persistErr
}

// AddGoal validates and appends a goal, then persists the collection.
func (s *Store) AddGoal(ctx context.Context, g core.Goal) ([]core.Goal, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	s.goalsMu.Lock()
	for _, existing := range s.goals {
		if existing.ID == g.ID {
			s.goalsMu.Unlock()
			return nil, core.ErrDuplicateID
		}
	}
	s.goals = append(s.goals, g)
	updated := copyGoals(s.goals)
	persistErr := s.persistJSON(ctx, KeyGoals, s.goals)
	s.goalsMu.Unlock()

	s.notify(KeyGoals)
	return updated, persistErr
}

// DeleteGoal removes the goal with the given id; unknown id behaves like
// DeleteExpense.
func (s *Store) DeleteGoal(ctx context.Context, id string) ([]core.Goal, error) {
	s.goalsMu.Lock()
	idx := -1
	for i, g := range s.goals {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		updated := copyGoals(s.goals)
		s.goalsMu.Unlock()
		return updated, core.ErrNotFound
	}
	s.goals = append(s.goals[:idx], s.goals[idx+1:]...)
	updated := copyGoals(s.goals)
	persistErr := s.persistJSON(ctx, KeyGoals, s.goals)
	s.goalsMu.Unlock()

	s.notify(KeyGoals)
	return updated, persistErr
}

// UpdateGoal replaces the goal whose id matches with the supplied full
// record. There is no partial update; callers send the complete goal.
func (s *Store) UpdateGoal(ctx context.Context, g core.Goal) ([]core.Goal, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	s.goalsMu.Lock()
	idx := -1
	for i, existing := range s.goals {
		if existing.ID == g.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		updated := copyGoals(s.goals)
		s.goalsMu.Unlock()
		return updated, core.ErrNotFound
	}
	s.goals[idx] = g
	updated := copyGoals(s.goals)
	persistErr := s.persistJSON(ctx, KeyGoals, s.goals)
	s.goalsMu.Unlock()

	s.notify(KeyGoals)
	return updated, persistErr
}

// SetBalance replaces the cash balance. The value is signed; no history is
// kept. Persisted as a plain decimal string.
func (s *Store) SetBalance(ctx context.Context, value float64) (float64, error) {
	s.balanceMu.Lock()
	s.balance = value
	persistErr := s.persist(ctx, KeyBalance, strconv.FormatFloat(value, 'f', -1, 64))
	s.balanceMu.Unlock()

	s.notify(KeyBalance)
	return value, persistErr
}

// UpdateUser replaces the profile singleton.
func (s *Store) UpdateUser(ctx context.Context, profile core.UserProfile) (core.UserProfile, error) {
	if err := profile.Validate(); err != nil {
		return core.UserProfile{}, err
	}

	s.userMu.Lock()
	s.user = profile
	persistErr := s.persistJSON(ctx, KeyUser, profile)
	s.userMu.Unlock()

	s.notify(KeyUser)
	return profile, persistErr
}

// Expenses returns a copy of the expense collection in insertion order.
func (s *Store) Expenses() []core.Expense {
	s.expensesMu.Lock()
	defer s.expensesMu.Unlock()
	return copyExpenses(s.expenses)
}

// Goals returns a copy of the goal collection in insertion order.
func (s *Store) Goals() []core.Goal {
	s.goalsMu.Lock()
	defer s.goalsMu.Unlock()
	return copyGoals(s.goals)
}

func (s *Store) Balance() float64 {
	s.balanceMu.Lock()
	defer s.balanceMu.Unlock()
	return s.balance
}

func (s *Store) User() core.UserProfile {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	return s.user
}

// Subscribe registers fn to run after every accepted mutation. Subscribers
// are invoked outside the slot locks, so they may call back into the store.
func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// AttachNotifier forwards slot-change events to an external transport.
// Publish failures are logged and never affect the mutation.
func (s *Store) AttachNotifier(n Notifier) {
	s.Subscribe(func(e Event) {
		if err := n.PublishSlotChanged(context.Background(), e.Slot); err != nil {
			s.logger.Warn("Slot change notification failed",
				log.FieldSlot, e.Slot, log.FieldError, err.Error())
		}
	})
}

func (s *Store) notify(slot string) {
	s.subMu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(Event{Slot: slot})
	}
}

func (s *Store) persistJSON(ctx context.Context, slot string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &core.AdapterError{Slot: slot, Op: "encode", Err: err}
	}
	return s.persist(ctx, slot, string(raw))
}

func (s *Store) persist(ctx context.Context, slot, value string) error {
	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	start := time.Now()
	if err := s.adapter.Set(ctx, slot, value); err != nil {
		return &core.AdapterError{Slot: slot, Op: log.OpSet, Err: err}
	}
	s.logger.InfoContext(ctx, "Slot persisted",
		log.FieldSlot, slot,
		log.FieldDuration, time.Since(start).Milliseconds())
	return nil
}

func copyExpenses(in []core.Expense) []core.Expense {
	out := make([]core.Expense, len(in))
	copy(out, in)
	return out
}

func copyGoals(in []core.Goal) []core.Goal {
	out := make([]core.Goal, len(in))
	copy(out, in)
	return out
}
