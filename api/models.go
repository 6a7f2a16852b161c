package api

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StoreItemRequest is the JSON body for PUT /items/{key}.
type StoreItemRequest struct {
	Value   string `json:"value"`
	Passkey string `json:"passkey"`
}

// RetrieveItemRequest is the JSON body for POST /items/{key}/retrieve.
type RetrieveItemRequest struct {
	Passkey string `json:"passkey"`
}

// StatusResponse is the body for operations that return no data.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RetrieveItemResponse is returned from POST /items/{key}/retrieve.
type RetrieveItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// ListItemsResponse is returned from GET /items.
type ListItemsResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Keys    []string `json:"keys"`
}
