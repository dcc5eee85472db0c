package handler

import (
	"net/http"
	"time"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"ok":   true,
			"time": time.Now().UTC(),
		})
	})
}
