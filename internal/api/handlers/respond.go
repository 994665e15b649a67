package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/systemdesignlab/content-api/internal/redact"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError surfaces an admin-write failure. The message is passed
// through but scrubbed of connection-string credentials first.
func respondStoreError(w http.ResponseWriter, err error) {
	respondError(w, http.StatusInternalServerError, redact.ConnString(err.Error()))
}
