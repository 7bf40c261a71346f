package services

// AuthResult is what every UserService operation returns: a success flag,
// the HTTP status to answer with, and either a payload or an error message.
type AuthResult struct {
	Success    bool
	StatusCode int
	Data       any
	Error      string
}

func success(status int, data any) AuthResult {
	return AuthResult{Success: true, StatusCode: status, Data: data}
}

func failure(status int, msg string) AuthResult {
	return AuthResult{Success: false, StatusCode: status, Error: msg}
}

// UserRef identifies a user in login and create responses.
type UserRef struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRef `json:"user"`
}

// CreateData is the payload of a successful user creation.
type CreateData struct {
	Message string  `json:"message"`
	User    UserRef `json:"user"`
}
