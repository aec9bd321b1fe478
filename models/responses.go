package models

// LoginResponse is returned by the login endpoint: the public view of the
// account plus the issued token, which is also set as a cookie.
type LoginResponse struct {
	PublicUser
	Token string `json:"token"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// HealthResponse is the body of the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse is the body of the build info endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
