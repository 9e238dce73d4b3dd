package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/kitchenops/timerkit/internal/core/domain"
	"github.com/kitchenops/timerkit/internal/core/ports"
)

var errStoreDown = errors.New("store down")

// memStore is an in-memory repository that records every call it receives.
type memStore[T any] struct {
	mu    sync.Mutex
	items map[string]T
	idOf  func(T) string
	calls []string
	fail  map[string]error
}

func newMemStore[T any](idOf func(T) string) *memStore[T] {
	return &memStore[T]{items: make(map[string]T), idOf: idOf, fail: make(map[string]error)}
}

func (m *memStore[T]) record(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
	return m.fail[op]
}

func (m *memStore[T]) called(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (m *memStore[T]) put(v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[m.idOf(v)] = v
}

func (m *memStore[T]) get(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[id]
	return v, ok
}

func (m *memStore[T]) Create(_ context.Context, v T) error {
	if err := m.record("Create"); err != nil {
		return err
	}
	m.put(v)
	return nil
}

func (m *memStore[T]) FindByID(_ context.Context, id string) (T, error) {
	var zero T
	if err := m.record("FindByID"); err != nil {
		return zero, err
	}
	v, ok := m.get(id)
	if !ok {
		return zero, domain.ErrNotFound
	}
	return v, nil
}

func (m *memStore[T]) Save(_ context.Context, v T) error {
	if err := m.record("Save"); err != nil {
		return err
	}
	m.put(v)
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id string) error {
	if err := m.record("Delete"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore[T]) filter(op string, keep func(T) bool) ([]T, error) {
	if err := m.record(op); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []T
	for _, v := range m.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

type timerStore struct{ *memStore[domain.Timer] }

func newTimerStore() *timerStore {
	return &timerStore{newMemStore(func(t domain.Timer) string { return t.ID })}
}

func (s *timerStore) FindByUserID(_ context.Context, userID string) ([]domain.Timer, error) {
	return s.filter("FindByUserID", func(t domain.Timer) bool { return t.UserID == userID })
}

type alertStore struct{ *memStore[domain.TimerAlert] }

func newAlertStore() *alertStore {
	return &alertStore{newMemStore(func(a domain.TimerAlert) string { return a.ID })}
}

func (s *alertStore) FindByTimerID(_ context.Context, timerID string) ([]domain.TimerAlert, error) {
	return s.filter("FindByTimerID", func(a domain.TimerAlert) bool { return a.TimerID == timerID })
}

type userStore struct{ *memStore[domain.User] }

func newUserStore() *userStore {
	return &userStore{newMemStore(func(u domain.User) string { return u.ID })}
}

func (s *userStore) FindByUserName(_ context.Context, userName string) (domain.User, error) {
	found, err := s.filter("FindByUserName", func(u domain.User) bool { return u.UserName == userName })
	if err != nil {
		return domain.User{}, err
	}
	if len(found) == 0 {
		return domain.User{}, domain.ErrNotFound
	}
	return found[0], nil
}

// IsUserNameUnique and IsEmailUnique let userStore act as its own uniqueness policy.
func (s *userStore) IsUserNameUnique(ctx context.Context, userName string) (bool, error) {
	found, err := s.filter("IsUserNameUnique", func(u domain.User) bool { return u.UserName == userName })
	return len(found) == 0, err
}

func (s *userStore) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	found, err := s.filter("IsEmailUnique", func(u domain.User) bool { return u.Email == email })
	return len(found) == 0, err
}

type inventoryStore struct{ *memStore[domain.Inventory] }

func newInventoryStore() *inventoryStore {
	return &inventoryStore{newMemStore(func(i domain.Inventory) string { return i.ID })}
}

func (s *inventoryStore) FindByUserID(_ context.Context, userID string) ([]domain.Inventory, error) {
	return s.filter("FindByUserID", func(i domain.Inventory) bool { return i.UserID == userID })
}

// AddToInventory appends the item reference to its parent, which lets the
// store double as the registrar.
func (s *inventoryStore) AddToInventory(_ context.Context, item domain.InventoryItem) error {
	if err := s.record("AddToInventory"); err != nil {
		return err
	}
	inv, ok := s.get(item.InventoryID)
	if !ok {
		return domain.ErrNotFound
	}
	inv.Items = append(slices.Clone(inv.Items), domain.ItemRef{ID: item.ID})
	s.put(inv)
	return nil
}

type itemStore struct{ *memStore[domain.InventoryItem] }

func newItemStore() *itemStore {
	return &itemStore{newMemStore(func(i domain.InventoryItem) string { return i.ID })}
}

func (s *itemStore) FindByInventoryID(_ context.Context, inventoryID string) ([]domain.InventoryItem, error) {
	return s.filter("FindByInventoryID", func(i domain.InventoryItem) bool { return i.InventoryID == inventoryID })
}

type settingStore struct{ *memStore[domain.Setting] }

func newSettingStore() *settingStore {
	return &settingStore{newMemStore(func(s domain.Setting) string { return s.ID })}
}

func (s *settingStore) FindByUserID(_ context.Context, userID string) ([]domain.Setting, error) {
	return s.filter("FindByUserID", func(v domain.Setting) bool { return v.UserID == userID })
}

// knownUsers is a UserExistence over a fixed set of ids.
type knownUsers map[string]bool

func (k knownUsers) UserExists(_ context.Context, userID string) (bool, error) {
	return k[userID], nil
}

// plainHasher prefixes passwords so tests can tell hashes from cleartext
// without paying for bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ports.ErrPasswordMismatch
	}
	return nil
}
