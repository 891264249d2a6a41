package usecase

import (
	"context"
	"fmt"

	"chargestation/internal/account/application/ports/in"
	"chargestation/internal/account/application/ports/out"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/logger"

	"golang.org/x/crypto/bcrypt"
)

// LoginService implements LoginUseCase.
type LoginService struct {
	userRepo   out.UserRepository
	jwtService *auth.JWTService
	log        *logger.Logger
}

func NewLoginService(userRepo out.UserRepository, jwtService *auth.JWTService, log *logger.Logger) *LoginService {
	return &LoginService{
		userRepo:   userRepo,
		jwtService: jwtService,
		log:        log,
	}
}

// Execute verifies the credentials and issues a bearer token carrying the
// caller's username and role.
func (s *LoginService) Execute(ctx context.Context, input in.LoginInput) (*in.LoginOutput, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "login_lookup_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}

	token, err := s.jwtService.GenerateToken(user.Username, user.Role)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "issue_token_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:  "user_logged_in",
		Message: fmt.Sprintf("user %s logged in", user.Username),
		Additional: map[string]interface{}{
			"username": user.Username,
			"role":     user.Role,
		},
	})

	return &in.LoginOutput{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
