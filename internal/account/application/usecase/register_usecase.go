package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"chargestation/internal/account/application/ports/in"
	"chargestation/internal/account/application/ports/out"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterService implements RegisterUseCase.
type RegisterService struct {
	userRepo out.UserRepository
	log      *logger.Logger
}

func NewRegisterService(userRepo out.UserRepository, log *logger.Logger) *RegisterService {
	return &RegisterService{
		userRepo: userRepo,
		log:      log,
	}
}

// Execute validates the registration form and creates the account. New
// accounts start unblocked and unconfirmed.
func (s *RegisterService) Execute(ctx context.Context, input in.RegisterInput) error {
	if input.FirstName == "" || input.LastName == "" || input.Username == "" {
		return domain.ErrMissingField
	}

	if !emailRegex.MatchString(input.EmailAddress) {
		return domain.ErrInvalidEmail
	}

	if !domain.IsValidRole(input.Role) {
		return domain.ErrInvalidRole
	}

	if len(input.Password) < 8 {
		return domain.ErrPasswordTooShort
	}

	dateOfBirth, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return domain.ErrInvalidDateOfBirth
	}

	if existing, err := s.userRepo.FindByUsername(ctx, input.Username); err != nil {
		return fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return domain.ErrUserAlreadyExists
	}

	if existing, err := s.userRepo.FindByEmail(ctx, input.EmailAddress); err != nil {
		return fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return domain.ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error(logger.Entry{
			Action:  "hash_password_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  dateOfBirth,
		Username:     input.Username,
		EmailAddress: input.EmailAddress,
		PasswordHash: string(passwordHash),
		Role:         input.Role,
		IsBlocked:    false,
		IsConfirmed:  false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error(logger.Entry{
			Action:  "register_user_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]interface{}{
				"username": input.Username,
				"role":     input.Role,
			},
		})
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:  "user_registered",
		Message: fmt.Sprintf("account %s registered", user.Username),
		Additional: map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})

	return nil
}
