package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/files"
	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/utils"
)

type handlers struct {
	store *files.UserStore
	log   *utils.Logger
}

// listUsers returns every user as a JSON array
func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// getUser returns one user by numeric id
func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	u, found := h.store.Get(id)
	if !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// updateUser replaces name, email and age of one user
func (h *handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req models.UserFields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	u, found := h.store.Update(id, req)
	if !found {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	h.log.Info("user updated",
		zap.Int("id", id),
		zap.String("request_id", r.Header.Get("X-Request-ID")),
	)
	writeJSON(w, http.StatusOK, u)
}

func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
