package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

// AuthService implements signup, activation, signin and the password-reset
// flow. Account state lives entirely on the user record; the service holds
// no per-user state.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	mailer ports.Mailer
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, mailer ports.Mailer, hasher *PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
		hasher: hasher,
		logger: logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) error {
	if input.Username == "" || input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return domain.ErrMissingFields
	}

	// Pre-checks give friendly errors; the unique indexes close the race.
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) && !errors.Is(err, domain.ErrEmailNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return err
	}
	activationCode, err := GenerateCode(CodeLength)
	if err != nil {
		return err
	}
	restoreCode, err := GenerateCode(CodeLength)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:            input.Username,
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		PasswordHash:        hash,
		HashCost:            s.hasher.Cost(),
		Type:                domain.TypeUser,
		Status:              domain.StatusPending,
		ActivationCode:      activationCode,
		RestorePasswordCode: restoreCode,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return err
	}

	// Mail failure does not undo the signup; the user can request a resend.
	if err := s.mailer.SendActivation(ctx, created.Email, created.ID, activationCode); err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("activation mail delivery failed")
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user signed up")
	return nil
}

func (s *AuthService) Activate(ctx context.Context, userID, code string) (*ports.AuthResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The code is cleared on first success, so a replay fails here.
	if user.ActivationCode == "" || user.ActivationCode != code {
		return nil, domain.ErrInvalidCode
	}

	user.Status = domain.StatusActive
	user.ActivationCode = ""
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(updated.ID, updated.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("account activated")
	return &ports.AuthResult{UserData: updated.Public(), Token: token}, nil
}

func (s *AuthService) Signin(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a wrong password: no account enumeration.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return &ports.AuthResult{UserData: user.Public(), Token: token}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrEmailNotFound
		}
		return err
	}

	// The restore code is not rotated here: repeated requests resend the
	// same link. Rotation happens when the reset succeeds.
	if user.RestorePasswordCode == "" {
		code, err := GenerateCode(CodeLength)
		if err != nil {
			return err
		}
		user.RestorePasswordCode = code
		user.UpdatedAt = time.Now().UTC()
		if user, err = s.users.Update(ctx, user); err != nil {
			return err
		}
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.ID, user.RestorePasswordCode); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("reset mail delivery failed")
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, userID, code, newPassword string) error {
	if newPassword == "" {
		return domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.RestorePasswordCode == "" || user.RestorePasswordCode != code {
		return domain.ErrInvalidCode
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	// Rotate the code so the just-used link cannot reset the password twice.
	nextCode, err := GenerateCode(CodeLength)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.HashCost = s.hasher.Cost()
	user.RestorePasswordCode = nextCode
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}
