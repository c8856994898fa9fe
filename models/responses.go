package models

// LoginRequest is the body of POST /authentication/login.
type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// Result is the uniform outcome payload returned by every endpoint that does
// not carry additional data.
type Result struct {
	Result       bool   `json:"result"`
	ErrorMessage string `json:"errorMessage"`
}

// LoginResponse is the body returned by POST /authentication/login.
type LoginResponse struct {
	Result       bool   `json:"result"`
	AccessToken  string `json:"accessToken"`
	ErrorMessage string `json:"errorMessage"`
}

// LogoutResponse is the body returned by POST /authentication/logout.
type LogoutResponse = Result

// UsersPostResponse is the body returned by POST /users.
type UsersPostResponse = Result

// UsersDeleteResponse is the body returned by DELETE /users.
type UsersDeleteResponse = Result

// MeResponse describes the authenticated caller as seen by the server.
type MeResponse struct {
	Result       bool   `json:"result"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Role         Role   `json:"userRole"`
	ErrorMessage string `json:"errorMessage"`
}

// Failure builds a negative Result carrying err's message.
func Failure(err error) Result {
	return Result{Result: false, ErrorMessage: err.Error()}
}

// Success builds a positive Result.
func Success() Result {
	return Result{Result: true}
}
