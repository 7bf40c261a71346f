// Package services contains server-side business logic. UserService checks
// credentials, registers users and lists them, reporting every outcome as an
// AuthResult that the HTTP layer can answer with directly.
package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
)

// Client-facing messages.
const (
	MsgLoginSuccessful   = "login successful"
	MsgUserCreated       = "user created successfully"
	MsgUserNotFound      = "user not found"
	MsgIncorrectPassword = "incorrect password"
	MsgUserExists        = "user with this email already exists"
	MsgInternalError     = "internal server error"
	MsgCreateError       = "error creating user"
	MsgListError         = "error retrieving users"
)

// UserService provides the credential operations:
// - Authenticate: check an email/password pair and issue a token
// - Create: register a new user
// - ListAll: list every user without passwords
type UserService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
	newToken    func(time.Time) (string, error)
}

// NewUserService constructs a UserService over the given repository manager.
func NewUserService(m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		logger:      logger.With("module", "services.user"),
		now:         time.Now,
		newToken:    NewToken,
	}
}

// Authenticate looks the user up by email and compares the stored password
// with the supplied one exactly.
func (s *UserService) Authenticate(ctx context.Context, email, password string) AuthResult {
	email = common.NormalizeEmail(email)

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return failure(http.StatusNotFound, MsgUserNotFound)
		}
		s.logger.Error(ctx, "login lookup failed", "email", email, "error", err)
		return failure(http.StatusInternalServerError, MsgInternalError)
	}

	if user.Password != password {
		return failure(http.StatusUnauthorized, MsgIncorrectPassword)
	}

	token, err := s.newToken(s.now())
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return failure(http.StatusInternalServerError, MsgInternalError)
	}

	return success(http.StatusOK, LoginData{
		Message: MsgLoginSuccessful,
		Token:   token,
		User:    UserRef{Email: user.Email, ID: user.ID},
	})
}

// Create registers a new user. The email is stored lowercased.
func (s *UserService) Create(ctx context.Context, email, password string) AuthResult {
	user := &models.User{Email: common.NormalizeEmail(email), Password: password}

	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return failure(http.StatusConflict, MsgUserExists)
		}
		s.logger.Error(ctx, "create user failed", "email", user.Email, "error", err)
		return failure(http.StatusInternalServerError, MsgCreateError)
	}

	s.logger.Info(ctx, "user created", "id", u.ID)
	return success(http.StatusCreated, CreateData{
		Message: MsgUserCreated,
		User:    UserRef{Email: u.Email, ID: u.ID},
	})
}

// ListAll returns every user, oldest first. Data is a non-nil
// []*models.UserInfo.
func (s *UserService) ListAll(ctx context.Context) AuthResult {
	list, err := s.repomanager.Users().FindAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "list users failed", "error", err)
		return failure(http.StatusInternalServerError, MsgListError)
	}
	if list == nil {
		list = []*models.UserInfo{}
	}
	return success(http.StatusOK, list)
}
