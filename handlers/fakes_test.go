package handlers

import (
	"context"
	"errors"
	"path"
	"sort"
	"sync"
	"time"

	"jobportal/models"
	"jobportal/repository"
	"jobportal/utils"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
	err   error
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{users: map[string]models.User{}}
	for _, u := range users {
		m.users[repository.NormalizeEmail(u.Email)] = *u
	}
	return m
}

func (m *memUsers) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	key := repository.NormalizeEmail(user.Email)
	if _, ok := m.users[key]; ok {
		return repository.ErrEmailExists
	}
	user.ID = key
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[key] = *user
	return nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[repository.NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) ListUsers(context.Context) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *memUsers) UpdateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := repository.NormalizeEmail(user.Email)
	if _, ok := m.users[key]; !ok {
		return repository.ErrNotFound
	}
	m.users[key] = *user
	return nil
}

func (m *memUsers) SetImagePath(_ context.Context, email, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	key := repository.NormalizeEmail(email)
	u, ok := m.users[key]
	if !ok {
		return repository.ErrNotFound
	}
	u.ImagePath = &p
	m.users[key] = u
	return nil
}

func (m *memUsers) DeleteUser(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := repository.NormalizeEmail(email)
	if _, ok := m.users[key]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, key)
	return nil
}

func (m *memUsers) get(email string) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[repository.NormalizeEmail(email)]
	return u, ok
}

type memJobs struct {
	jobs []*models.Job
	err  error
}

func (m *memJobs) CreateJob(_ context.Context, job *models.Job) error {
	if m.err != nil {
		return m.err
	}
	job.ID = "job-1"
	job.CreatedAt = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	job.UpdatedAt = job.CreatedAt
	m.jobs = append([]*models.Job{job}, m.jobs...)
	return nil
}

func (m *memJobs) ListJobs(context.Context) ([]*models.Job, error) {
	return m.jobs, m.err
}

type memOrg struct {
	saved []*models.Organization
}

func (m *memOrg) SaveOrganization(_ context.Context, org *models.Organization) error {
	org.ID = "org-1"
	m.saved = append(m.saved, org)
	return nil
}

func (m *memOrg) GetOrganization(context.Context) (*models.Organization, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

type memImages struct {
	files   map[string][]byte
	deleted []string
	saveErr error
}

func newMemImages() *memImages {
	return &memImages{files: map[string][]byte{}}
}

func (m *memImages) Save(_ context.Context, filename, _ string, data []byte) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.files[filename] = data
	return "/images/" + filename, nil
}

func (m *memImages) Delete(_ context.Context, ref string) error {
	name := path.Base(ref)
	if _, ok := m.files[name]; !ok {
		return errors.New("no such image")
	}
	delete(m.files, name)
	m.deleted = append(m.deleted, ref)
	return nil
}

func (m *memImages) List(context.Context) ([]utils.StoredImage, error) {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]utils.StoredImage, 0, len(names))
	for _, name := range names {
		out = append(out, utils.StoredImage{Name: utils.DisplayName(name), ImageURL: "/images/" + name})
	}
	return out, nil
}
