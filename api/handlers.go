package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds request bodies; stored values are short text.
const maxBodySize = 1 << 20

func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, bool) {
	var req T
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

// Register handles POST /auth/register.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[RegisterRequest](w, r, maxBodySize)
	if !ok {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	res := a.svc.Register(r.Context(), req.Username, req.Password)
	if res.Success {
		writeJSON(w, http.StatusCreated, StatusResponse{Success: true, Message: res.Message})
		return
	}
	writeResult(w, res)
}

// Login handles POST /auth/login. On success the session token is stored
// in an HttpOnly cookie.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[LoginRequest](w, r, maxBodySize)
	if !ok {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	res := a.svc.Login(r.Context(), req.Username, req.Password)
	if !res.Success {
		a.logger.Info("login rejected", "code", res.Code.String())
		writeResult(w, res.Result)
		return
	}

	writeSessionCookie(w, r, res.Token, res.ExpiresAt)
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: res.Message})
}

// Logout handles POST /auth/logout. The cookie is cleared regardless of
// whether the presented session was still valid.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		token = cookie.Value
	}

	res := a.svc.Logout(r.Context(), token)
	clearSessionCookie(w, r)
	writeResult(w, res)
}

// StoreItem handles PUT /items/{key}.
func (a *API) StoreItem(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	req, ok := decodeJSON[StoreItemRequest](w, r, maxBodySize)
	if !ok {
		return
	}
	if req.Passkey == "" {
		writeError(w, http.StatusBadRequest, "passkey is required")
		return
	}

	res := a.svc.StoreItem(r.Context(), tokenFromContext(r.Context()), key, req.Value, req.Passkey)
	writeResult(w, res)
}

// RetrieveItem handles POST /items/{key}/retrieve. A forced logout from
// repeated wrong passkeys clears the session cookie.
func (a *API) RetrieveItem(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	req, ok := decodeJSON[RetrieveItemRequest](w, r, maxBodySize)
	if !ok {
		return
	}
	if req.Passkey == "" {
		writeError(w, http.StatusBadRequest, "passkey is required")
		return
	}

	res := a.svc.RetrieveItem(r.Context(), tokenFromContext(r.Context()), key, req.Passkey)
	if res.SessionRevoked {
		clearSessionCookie(w, r)
	}
	writeJSON(w, statusForCode(res.Code), RetrieveItemResponse{
		Success: res.Success,
		Message: res.Message,
		Data:    res.Data,
	})
}

// ListItems handles GET /items.
func (a *API) ListItems(w http.ResponseWriter, r *http.Request) {
	res := a.svc.ListKeys(r.Context(), tokenFromContext(r.Context()))
	keys := res.Keys
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, statusForCode(res.Code), ListItemsResponse{
		Success: res.Success,
		Message: res.Message,
		Keys:    keys,
	})
}
