package controllers

import (
	"encoding/json"
	"net/http"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes the error messages as {"error": [...]} with the given
// status, the shape every error response shares.
func sendError(w http.ResponseWriter, status int, messages ...string) {
	sendJSON(w, status, map[string][]string{"error": messages})
}
