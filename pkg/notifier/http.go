package notifier

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// StatusHandler exposes the queue state for operational tooling:
//
//	GET    /queue/status   queue length, dispatcher state, pending jobs
//	DELETE /queue          clear the queue and reset the dispatcher
//
// Mount it behind whatever auth the surrounding application uses; the
// handler itself performs none.
func StatusHandler(s *Service) http.Handler {
	r := chi.NewRouter()

	r.Get("/queue/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s.QueueStatus()); err != nil {
			http.Error(w, "failed to encode queue status", http.StatusInternalServerError)
		}
	})

	r.Delete("/queue", func(w http.ResponseWriter, req *http.Request) {
		s.ClearQueue()
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
