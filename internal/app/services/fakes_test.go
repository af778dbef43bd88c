package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/egresados/internal/app/models"
	"github.com/yigit/egresados/internal/app/repositories"
	"github.com/yigit/egresados/internal/pkg/apperrors"
	"github.com/yigit/egresados/internal/pkg/filestorage"
)

var errStoreDown = errors.New("store down")

func nopLogger() zerolog.Logger { return zerolog.Nop() }

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[int64]*models.User{}, nextID: 100}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *fakeUserStore) List(_ context.Context, filter repositories.UserFilter) ([]*models.User, int, error) {
	var out []*models.User
	for _, u := range s.users {
		if filter.Role == "" || u.Role == filter.Role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	stored, ok := s.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	hash := stored.Password
	if user.Password != "" {
		hash = user.Password
	}
	cp := *user
	cp.Password = hash
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) SetActive(_ context.Context, id int64, active bool) error {
	u, ok := s.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeFileIndex map[int64][]string

func (f fakeFileIndex) StoredFilesByUser(_ context.Context, userID int64) ([]string, error) {
	return f[userID], nil
}

// fakeStorage records saved and deleted paths without touching disk.
type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) SaveFile(fh *multipart.FileHeader, category filestorage.Category) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	p := string(category) + "/" + fh.Filename
	f.saved = append(f.saved, p)
	return p, nil
}

func (f *fakeStorage) DeleteFile(relativePath string) error {
	f.deleted = append(f.deleted, relativePath)
	return nil
}

func (f *fakeStorage) GetFullPath(relativePath string) string {
	return "/var/uploads/" + relativePath
}

func (f *fakeStorage) PublicURL(relativePath string) string {
	return "http://localhost:8080/uploads/" + relativePath
}

type fakeAcademicStore struct {
	records   map[int64]*models.AcademicInformation
	nextID    int64
	updateErr error
}

func newFakeAcademicStore(records ...*models.AcademicInformation) *fakeAcademicStore {
	s := &fakeAcademicStore{records: map[int64]*models.AcademicInformation{}, nextID: 10}
	for _, r := range records {
		s.records[r.ID] = r
	}
	return s
}

func (s *fakeAcademicStore) ListByUserID(_ context.Context, userID int64) ([]*models.AcademicInformation, error) {
	var out []*models.AcademicInformation
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeAcademicStore) GetByID(_ context.Context, id int64) (*models.AcademicInformation, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrAcademicInformationNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeAcademicStore) Create(_ context.Context, a *models.AcademicInformation) error {
	s.nextID++
	a.ID = s.nextID
	cp := *a
	s.records[a.ID] = &cp
	return nil
}

func (s *fakeAcademicStore) Update(_ context.Context, a *models.AcademicInformation) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	cp := *a
	s.records[a.ID] = &cp
	return nil
}

func (s *fakeAcademicStore) DeleteMany(_ context.Context, userID int64, ids []int64) ([]string, error) {
	var paths []string
	for _, id := range ids {
		if r, ok := s.records[id]; ok && r.UserID == userID {
			paths = append(paths, r.CertificatePath)
			delete(s.records, id)
		}
	}
	return paths, nil
}

type fakeEmploymentStore struct {
	records map[int64]*models.EmploymentInformation
}

func (s *fakeEmploymentStore) ListByUserID(_ context.Context, userID int64) ([]*models.EmploymentInformation, error) {
	var out []*models.EmploymentInformation
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeEmploymentStore) GetByID(_ context.Context, id int64) (*models.EmploymentInformation, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrEmploymentInformationNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeEmploymentStore) Create(_ context.Context, e *models.EmploymentInformation) error {
	e.ID = int64(len(s.records) + 1)
	cp := *e
	s.records[e.ID] = &cp
	return nil
}

func (s *fakeEmploymentStore) Update(_ context.Context, e *models.EmploymentInformation) error {
	cp := *e
	s.records[e.ID] = &cp
	return nil
}

func (s *fakeEmploymentStore) DeleteMany(_ context.Context, userID int64, ids []int64) (int, error) {
	n := 0
	for _, id := range ids {
		if r, ok := s.records[id]; ok && r.UserID == userID {
			delete(s.records, id)
			n++
		}
	}
	return n, nil
}

type fakeProfileStore struct {
	profiles map[int64]*models.AdminProfile
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID int64) (*models.AdminProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProfileStore) Upsert(_ context.Context, p *models.AdminProfile) error {
	cp := *p
	s.profiles[p.UserID] = &cp
	return nil
}

type fakeNewsStore struct {
	items map[int64]*models.News
}

func (s *fakeNewsStore) List(_ context.Context, offset, limit uint64) ([]*models.News, int, error) {
	var out []*models.News
	for _, n := range s.items {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	total := len(out)
	if offset >= uint64(total) {
		return []*models.News{}, total, nil
	}
	end := offset + limit
	if end > uint64(total) {
		end = uint64(total)
	}
	return out[offset:end], total, nil
}

func (s *fakeNewsStore) GetByID(_ context.Context, id int64) (*models.News, error) {
	n, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrNewsNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *fakeNewsStore) Create(_ context.Context, n *models.News) error {
	n.ID = int64(len(s.items) + 1)
	cp := *n
	s.items[n.ID] = &cp
	return nil
}

func (s *fakeNewsStore) Update(_ context.Context, n *models.News) error {
	if _, ok := s.items[n.ID]; !ok {
		return apperrors.ErrNewsNotFound
	}
	cp := *n
	s.items[n.ID] = &cp
	return nil
}

func (s *fakeNewsStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrNewsNotFound
	}
	delete(s.items, id)
	return nil
}
