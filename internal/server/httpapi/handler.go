package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	maxBodyBytes = 1 << 20

	msgWelcome        = "Welcome to the QA API!"
	msgMissingFields  = "email and password are required"
	msgInvalidBody    = "invalid request body"
	msgBodyTooLarge   = "request body too large"
	contentTypeHeader = "application/json; charset=utf-8"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type usersResponse struct {
	Users any `json:"users"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: msgWelcome})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readCredentials(w, r)
	if !ok {
		return
	}

	result := s.users.Authenticate(r.Context(), c.Email, c.Password)
	if !result.Success {
		writeError(w, result.StatusCode, result.Error)
		return
	}

	writeJSON(w, result.StatusCode, result.Data)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	c, ok := s.readCredentials(w, r)
	if !ok {
		return
	}

	result := s.users.Create(r.Context(), c.Email, c.Password)
	if !result.Success {
		writeError(w, result.StatusCode, result.Error)
		return
	}

	writeJSON(w, http.StatusCreated, result.Data)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	result := s.users.ListAll(r.Context())
	if !result.Success {
		writeError(w, result.StatusCode, result.Error)
		return
	}

	writeJSON(w, http.StatusOK, usersResponse{Users: result.Data})
}

// readCredentials decodes and validates the request body. On failure it has
// already written the 4xx response.
func (s *Server) readCredentials(w http.ResponseWriter, r *http.Request) (credentials, bool) {
	var c credentials

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(&c)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		// an empty body reads as {}
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return c, false
		}
		s.logger.Debug(r.Context(), "bad request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return c, false
	}

	if c.Email == "" || c.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return c, false
	}

	return c, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeHeader)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
