package api

import (
	"encoding/json"
	"net/http"

	"github.com/mterrano/lockbox/vault"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, StatusResponse{Success: false, Message: msg})
}

// statusForCode maps facade result codes to HTTP status codes.
func statusForCode(code vault.Code) int {
	switch code {
	case vault.CodeOK:
		return http.StatusOK
	case vault.CodeUsernameTaken:
		return http.StatusConflict
	case vault.CodeInvalidCredentials, vault.CodeUnauthenticated, vault.CodeForcedLogout:
		return http.StatusUnauthorized
	case vault.CodeAccountLocked, vault.CodeAuthenticationFailure:
		return http.StatusForbidden
	case vault.CodeItemNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeResult(w http.ResponseWriter, res vault.Result) {
	writeJSON(w, statusForCode(res.Code), StatusResponse{Success: res.Success, Message: res.Message})
}
