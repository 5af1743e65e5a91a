package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrylevesque/userdeck/internal/models"
)

func TestLoadUserStore_DemoSet(t *testing.T) {
	s, err := LoadUserStore("")
	require.NoError(t, err)
	assert.Equal(t, demoUsers, s.List())
}

func TestLoadUserStore_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":5,"name":"Eve","email":"eve@x.io","age":33}]`), 0600))

	s, err := LoadUserStore(path)
	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 5, Name: "Eve", Email: "eve@x.io", Age: 33}}, s.List())
}

func TestLoadUserStore_Errors(t *testing.T) {
	_, err := LoadUserStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":1}`), 0600))
	_, err = LoadUserStore(path)
	assert.Error(t, err)
}

func TestUserStore_Update(t *testing.T) {
	s := NewUserStore([]models.User{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})

	u, ok := s.Update(2, models.UserFields{Name: "Bee", Email: "b@e.com", Age: 20})
	require.True(t, ok)
	assert.Equal(t, models.User{ID: 2, Name: "Bee", Email: "b@e.com", Age: 20}, u)
	assert.Equal(t, "A", s.List()[0].Name)

	_, ok = s.Update(3, models.UserFields{})
	assert.False(t, ok)
}

func TestUserStore_ListIsCopy(t *testing.T) {
	seed := []models.User{{ID: 1, Name: "A"}}
	s := NewUserStore(seed)
	seed[0].Name = "changed"
	got := s.List()
	got[0].Name = "also changed"
	assert.Equal(t, "A", s.List()[0].Name)
}
