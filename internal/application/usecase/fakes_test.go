package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/jhoicas/Distriquim-api/internal/domain/entity"
	"github.com/jhoicas/Distriquim-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Los campos *Err permiten inyectar
// fallos puntuales y verificar los caminos de error y de rollback.

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID      map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, int, error) {
	return nil, 0, errors.New("no usado en estos tests")
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := r.byID[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) DeleteByEmail(_ context.Context, email string) error {
	for id, u := range r.byID {
		if u.Email == email {
			delete(r.byID, id)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Distributors
// ──────────────────────────────────────────────────────────────────────────────

type fakeDistRepo struct {
	byID      map[string]*entity.Distributor
	createErr error
}

func newFakeDistRepo(dists ...*entity.Distributor) *fakeDistRepo {
	r := &fakeDistRepo{byID: map[string]*entity.Distributor{}}
	for _, d := range dists {
		cp := *d
		r.byID[d.ID] = &cp
	}
	return r
}

func (r *fakeDistRepo) Create(_ context.Context, d *entity.Distributor) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDistRepo) GetByID(_ context.Context, id string) (*entity.Distributor, error) {
	if d, ok := r.byID[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeDistRepo) GetByEmail(_ context.Context, email string) (*entity.Distributor, error) {
	for _, d := range r.byID {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDistRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Distributor, int, error) {
	return nil, 0, errors.New("no usado en estos tests")
}

func (r *fakeDistRepo) ListActive(_ context.Context) ([]*entity.Distributor, error) {
	var out []*entity.Distributor
	for _, d := range r.byID {
		if d.Status == entity.StatusActive {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDistRepo) Update(_ context.Context, d *entity.Distributor) error {
	cp := *d
	r.byID[d.ID] = &cp
	return nil
}

func (r *fakeDistRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Documents
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocRepo struct {
	byID        map[string]*entity.Document
	assignments map[string]map[string]bool // documentID -> distributorID
	createErr   error
}

func newFakeDocRepo(docs ...*entity.Document) *fakeDocRepo {
	r := &fakeDocRepo{byID: map[string]*entity.Document{}, assignments: map[string]map[string]bool{}}
	for _, d := range docs {
		cp := *d
		r.byID[d.ID] = &cp
	}
	return r
}

func (r *fakeDocRepo) Create(_ context.Context, doc *entity.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *doc
	r.byID[doc.ID] = &cp
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	if d, ok := r.byID[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeDocRepo) List(_ context.Context, _, _ int) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for _, d := range r.byID {
		cp := *d
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) ListByDistributor(_ context.Context, distributorID string, _, _ int) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for docID, dists := range r.assignments {
		if dists[distributorID] {
			cp := *r.byID[docID]
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) ListRecent(_ context.Context, _ int) ([]*entity.Document, error) {
	return nil, nil
}

func (r *fakeDocRepo) Assign(_ context.Context, documentID string, distributorIDs []string) error {
	if r.assignments[documentID] == nil {
		r.assignments[documentID] = map[string]bool{}
	}
	for _, id := range distributorIDs {
		r.assignments[documentID][id] = true
	}
	return nil
}

func (r *fakeDocRepo) IsAssigned(_ context.Context, documentID, distributorID string) (bool, error) {
	return r.assignments[documentID][distributorID], nil
}

func (r *fakeDocRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	delete(r.assignments, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Notifications / News
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotifRepo struct {
	created   []*entity.Notification
	createErr error
}

func (r *fakeNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *n
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeNotifRepo) ListByDistributor(_ context.Context, distributorID string, _, _ int) ([]*entity.Notification, int, error) {
	var out []*entity.Notification
	for _, n := range r.created {
		if n.DistributorID == distributorID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *fakeNotifRepo) UnreadCount(_ context.Context, distributorID string) (int, error) {
	count := 0
	for _, n := range r.created {
		if n.DistributorID == distributorID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotifRepo) MarkRead(_ context.Context, id, distributorID string) (bool, error) {
	for _, n := range r.created {
		if n.ID == id && n.DistributorID == distributorID {
			n.Read = true
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotifRepo) MarkAllRead(_ context.Context, distributorID string) error {
	for _, n := range r.created {
		if n.DistributorID == distributorID {
			n.Read = true
		}
	}
	return nil
}

type fakeNewsRepo struct {
	byID      map[string]*entity.News
	updateErr error
}

func newFakeNewsRepo(items ...*entity.News) *fakeNewsRepo {
	r := &fakeNewsRepo{byID: map[string]*entity.News{}}
	for _, n := range items {
		cp := *n
		r.byID[n.ID] = &cp
	}
	return r
}

func (r *fakeNewsRepo) Create(_ context.Context, n *entity.News) error {
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *fakeNewsRepo) GetByID(_ context.Context, id string) (*entity.News, error) {
	if n, ok := r.byID[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeNewsRepo) List(_ context.Context, publishedOnly bool, _, _ int) ([]*entity.News, int, error) {
	var out []*entity.News
	for _, n := range r.byID {
		if publishedOnly && !n.Published {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeNewsRepo) Update(_ context.Context, n *entity.News) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *fakeNewsRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Storage y runners transaccionales
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	files   map[string][]byte
	removed []string
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[string][]byte{}}
}

func (s *fakeStore) Save(name string, r io.Reader) (string, int64, error) {
	if s.saveErr != nil {
		return "", 0, s.saveErr
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return "", 0, err
	}
	s.files[name] = buf.Bytes()
	return name, n, nil
}

func (s *fakeStore) Remove(path string) error {
	delete(s.files, path)
	s.removed = append(s.removed, path)
	return nil
}

func (s *fakeStore) FullPath(path string) string { return "/uploads/" + path }

// Los runners de test ejecutan fn contra los repos dados sin transacción real;
// sirven para verificar que el caso de uso corta al primer error (el rollback
// real lo cubre el TxRunner de postgres).
type fakePairedRunner struct {
	users *fakeUserRepo
	dists *fakeDistRepo
	calls int
}

func (r *fakePairedRunner) RunPaired(_ context.Context, fn func(repository.UserRepository, repository.DistributorRepository) error) error {
	r.calls++
	return fn(r.users, r.dists)
}

type fakeAssignmentRunner struct {
	docs   *fakeDocRepo
	notifs *fakeNotifRepo
	calls  int
}

func (r *fakeAssignmentRunner) RunAssignment(_ context.Context, fn func(repository.DocumentRepository, repository.NotificationRepository) error) error {
	r.calls++
	return fn(r.docs, r.notifs)
}

type fakePublishRunner struct {
	news   *fakeNewsRepo
	dists  *fakeDistRepo
	notifs *fakeNotifRepo
	calls  int
}

func (r *fakePublishRunner) RunPublish(_ context.Context, fn func(repository.NewsRepository, repository.DistributorRepository, repository.NotificationRepository) error) error {
	r.calls++
	return fn(r.news, r.dists, r.notifs)
}
