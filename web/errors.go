package web

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the JSON document sent with failed requests.
type errorBody struct {
	Error string `json:"error"`
}

// writeError sends msg as a JSON error document with the given status.
func writeError(w http.ResponseWriter, msg string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(errorBody{Error: msg})
	if err != nil {
		log.Printf("writeError: %s", err)
	}
}
