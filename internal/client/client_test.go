package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/utils"
)

func TestClient_ListUsers(t *testing.T) {
	var gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		gotReqID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"name":"Ann Lee","email":"ann@x.com","age":30},{"id":2,"name":"","email":"","age":0}]`)
	}))
	defer srv.Close()

	users, err := New(srv.URL + "/").ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 1, Name: "Ann Lee", Email: "ann@x.com", Age: 30},
		{ID: 2},
	}, users)

	_, err = uuid.Parse(gotReqID)
	assert.NoError(t, err, "request id should be a UUID, got %q", gotReqID)
}

func TestClient_ListUsersNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsers(context.Background())
	require.Error(t, err)
	var se *utils.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, http.StatusServiceUnavailable, utils.StatusCode(err))
}

func TestClient_ListUsersBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not":"an array"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode users")
}

func TestClient_ListUsersTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListUsers(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, utils.StatusCode(err))
}

func TestClient_UpdateUser(t *testing.T) {
	var got models.UserFields
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateUser(context.Background(), 7, models.UserFields{Name: "Jon Ng", Email: "jon@ng.com", Age: 45})
	require.NoError(t, err)
	assert.Equal(t, models.UserFields{Name: "Jon Ng", Email: "jon@ng.com", Age: 45}, got)
}

func TestClient_UpdateUserBodyShape(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).UpdateUser(context.Background(), 1, models.UserFields{Name: "A", Email: "a@b.com", Age: 20}))
	assert.Len(t, raw, 3)
	assert.Equal(t, "A", raw["name"])
	assert.Equal(t, "a@b.com", raw["email"])
	assert.Equal(t, float64(20), raw["age"])
}

func TestClient_UpdateUserNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateUser(context.Background(), 3, models.UserFields{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
}

func TestClient_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL).ListUsers(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
