package store

import (
	"context"
	"strings"
	"sync"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goadvice/internal/user/entity"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	users   map[int64]entity.User
	byEmail map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:   make(map[int64]entity.User),
		byEmail: make(map[string]int64),
	}
}

func (s *InMemoryStore) Create(ctx context.Context, user entity.User) error {
	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return pkgerror.NewBusinessf(entity.CodeUserEmailTaken, "email %s is already registered", user.Email)
	}
	if _, exists := s.users[user.ID]; exists {
		return pkgerror.NewBusiness("user already exists", pkgerror.CodeConflict)
	}

	s.users[user.ID] = user
	s.byEmail[email] = user.ID

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return user, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.users, id)
	delete(s.byEmail, normalizeEmail(user.Email))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
