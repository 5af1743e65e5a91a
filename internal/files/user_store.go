package files

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/harrylevesque/userdeck/internal/models"
)

// UserStore is the in-memory record set behind the development server.
// Edits live only as long as the process.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// demoUsers seeds the store when no seed file is configured.
var demoUsers = []models.User{
	{ID: 1, Name: "Ann Lee", Email: "ann@x.com", Age: 30},
	{ID: 2, Name: "Jon Ng", Email: "jon@ng.com", Age: 45},
	{ID: 3, Name: "Maria Perez", Email: "maria.perez@example.co.uk", Age: 27},
}

func NewUserStore(users []models.User) *UserStore {
	s := &UserStore{users: make([]models.User, len(users))}
	copy(s.users, users)
	return s
}

// LoadUserStore reads a JSON array of users from path. An empty path gives
// the built-in demo set.
func LoadUserStore(path string) (*UserStore, error) {
	if path == "" {
		return NewUserStore(demoUsers), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return NewUserStore(users), nil
}

// List returns a copy of all users in insertion order.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) Get(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Update replaces the mutable fields of user id and returns the result.
func (s *UserStore) Update(id int, f models.UserFields) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = s.users[i].WithFields(f)
			return s.users[i], true
		}
	}
	return models.User{}, false
}
