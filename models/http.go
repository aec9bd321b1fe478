package models

// CredentialsRequest is the body of the signup and login endpoints.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

// UpdateRequest is the body of the account update endpoint.
// Absent fields are left untouched. Token is accepted in the body as a
// fallback when neither the cookie nor the Authorization header carry it.
type UpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=255"`
	Token    string  `json:"token,omitempty" validate:"omitempty,min=3"`
}
