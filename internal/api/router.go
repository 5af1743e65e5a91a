package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/harrylevesque/userdeck/internal/files"
	"github.com/harrylevesque/userdeck/internal/utils"
)

// NewRouter serves the users REST contract from store.
func NewRouter(store *files.UserStore, log *utils.Logger) *mux.Router {
	if log == nil {
		log = utils.NewNopLogger()
	}
	h := &handlers{store: store, log: log}

	r := mux.NewRouter()
	r.Use(accessLog(log))
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/users", h.listUsers).Methods("GET")
	r.HandleFunc("/users/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/users/{id}", h.updateUser).Methods("PUT")
	return r
}

func accessLog(log *utils.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info("served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", r.Header.Get("X-Request-ID")),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
