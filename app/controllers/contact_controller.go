package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"ourblog/app/validation"
)

// ContactController handles the contact form endpoint. Messages are
// validated and logged; actual delivery is left to an external system.
type ContactController struct{}

// NewContactController creates a new ContactController
func NewContactController() *ContactController {
	return &ContactController{}
}

// Create handles an incoming contact message
func (cc *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	email := validation.Email(strings.TrimSpace(req.Email))

	var errs []string
	if len(req.Name) < 2 {
		errs = append(errs, "'name' must be at least 2 characters.")
	}
	if len(req.Message) < 2 {
		errs = append(errs, "'message' must be at least 2 characters.")
	}
	if email == "" {
		errs = append(errs, "'email' is not a valid email address.")
	}
	if len(errs) > 0 {
		sendError(w, http.StatusBadRequest, errs...)
		return
	}

	slog.Info("contact message received", "name", req.Name, "email", email)
	sendJSON(w, http.StatusOK, map[string][]string{"success": {"Message received."}})
}
