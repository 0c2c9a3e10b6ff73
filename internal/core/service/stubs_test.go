package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[int64]*domain.User
	roles     map[int64][]string
	nextID    int64
	createErr error // if set, Create returns this error
	assignErr error // if set, AssignRole returns this error
	findErr   error // if set, FindByUsername returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:  make(map[int64]*domain.User),
		roles: make(map[int64][]string),
	}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if strings.EqualFold(u.Username, username) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// Create mirrors the unique index on lower(username).
func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.byID {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Roles(_ context.Context, userID int64) ([]string, error) {
	return append([]string(nil), r.roles[userID]...), nil
}

func (r *stubUserRepo) AssignRole(_ context.Context, userID int64, role string) error {
	if r.assignErr != nil {
		return r.assignErr
	}
	if domain.Roles(r.roles[userID]).Has(role) {
		return nil
	}
	r.roles[userID] = append(r.roles[userID], role)
	return nil
}

// add inserts a user directly, bypassing the service.
func (r *stubUserRepo) add(username string, workplaceID int64, roles ...string) *domain.User {
	u := &domain.User{Username: username, WorkplaceID: workplaceID}
	_ = r.Create(context.Background(), u)
	r.roles[u.ID] = roles
	return u
}

type stubWorkplaceRepo struct {
	byID   map[int64]*domain.Workplace
	users  *stubUserRepo // membership is derived from the user store
	nextID int64
}

func newStubWorkplaceRepo(users *stubUserRepo, names ...string) *stubWorkplaceRepo {
	r := &stubWorkplaceRepo{byID: make(map[int64]*domain.Workplace), users: users}
	for _, n := range names {
		_ = r.Create(context.Background(), &domain.Workplace{Name: n})
	}
	return r
}

func (r *stubWorkplaceRepo) List(_ context.Context) ([]*domain.Workplace, error) {
	out := make([]*domain.Workplace, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if w, ok := r.byID[id]; ok {
			clone := *w
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubWorkplaceRepo) FindByID(_ context.Context, id int64) (*domain.Workplace, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWorkplaceNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *stubWorkplaceRepo) FindByName(_ context.Context, name string) (*domain.Workplace, error) {
	for _, w := range r.byID {
		if strings.EqualFold(w.Name, name) {
			clone := *w
			return &clone, nil
		}
	}
	return nil, domain.ErrWorkplaceNotFound
}

func (r *stubWorkplaceRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubWorkplaceRepo) Create(_ context.Context, w *domain.Workplace) error {
	r.nextID++
	w.ID = r.nextID
	clone := *w
	r.byID[w.ID] = &clone
	return nil
}

func (r *stubWorkplaceRepo) Update(_ context.Context, w *domain.Workplace) error {
	if _, ok := r.byID[w.ID]; !ok {
		return domain.ErrWorkplaceNotFound
	}
	clone := *w
	r.byID[w.ID] = &clone
	return nil
}

func (r *stubWorkplaceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrWorkplaceNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubWorkplaceRepo) MemberIDs(_ context.Context, workplaceID int64) ([]int64, error) {
	var ids []int64
	if r.users == nil {
		return ids, nil
	}
	for id, u := range r.users.byID {
		if u.WorkplaceID == workplaceID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type stubEntryRepo struct {
	byID      map[int64]*domain.HealthEntry
	nextID    int64
	createErr error
	updateErr error
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{byID: make(map[int64]*domain.HealthEntry)}
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.HealthEntry) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	e.ID = r.nextID
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

// FindForOwner hides foreign entries exactly like the real stores do.
func (r *stubEntryRepo) FindForOwner(_ context.Context, id, userID int64) (*domain.HealthEntry, error) {
	e, ok := r.byID[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.HealthEntry, error) {
	return r.ListByUsers(ctx, []int64{userID})
}

func (r *stubEntryRepo) ListByUsers(_ context.Context, userIDs []int64) ([]*domain.HealthEntry, error) {
	want := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []*domain.HealthEntry
	for id := int64(1); id <= r.nextID; id++ {
		if e, ok := r.byID[id]; ok && want[e.UserID] {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) UpdateMetrics(_ context.Context, id, userID int64, m domain.Metrics) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	e, ok := r.byID[id]
	if !ok || e.UserID != userID {
		return domain.ErrEntryNotFound
	}
	e.Metrics = m
	return nil
}

func (r *stubEntryRepo) DeleteForOwner(_ context.Context, id, userID int64) error {
	e, ok := r.byID[id]
	if !ok || e.UserID != userID {
		return domain.ErrEntryNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubRoleRepo struct {
	names map[string]bool
}

func (r *stubRoleRepo) Ensure(_ context.Context, name string) (bool, error) {
	if r.names[name] {
		return false, nil
	}
	r.names[name] = true
	return true, nil
}

type stubIdempotency struct {
	keys      map[string]int64
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{keys: make(map[string]int64)}
}

func (s *stubIdempotency) k(userID int64, key string) string {
	return fmt.Sprintf("%d:%s", userID, key)
}

func (s *stubIdempotency) Lookup(_ context.Context, userID int64, key string) (int64, error) {
	if s.lookupErr != nil {
		return 0, s.lookupErr
	}
	return s.keys[s.k(userID, key)], nil
}

func (s *stubIdempotency) Remember(_ context.Context, userID int64, key string, entryID int64) error {
	s.keys[s.k(userID, key)] = entryID
	return nil
}

var errStoreDown = errors.New("store unavailable")
