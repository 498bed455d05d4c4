package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is the absolute lifetime of a password reset token.
const resetTokenTTL = 2 * time.Hour

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (*models.UserDB, error)
}

// TokenGenerator defines an interface for generating bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role, firstName, lastName string) (string, error)
}

// PasswordResetWriter stores issued reset tokens.
type PasswordResetWriter interface {
	Save(ctx context.Context, reset models.PasswordResetDB) error
}

// EmailSender delivers password reset instructions.
type EmailSender interface {
	SendPasswordReset(ctx context.Context, toEmail, resetLink string) error
}

// RegisterInput carries the registration request fields.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        string
	Phone       *string
	CompanyName *string
}

// AuthService handles registration, login and password reset issuance.
type AuthService struct {
	reader       UserReader
	writer       UserWriter
	resetWriter  PasswordResetWriter
	email        EmailSender
	jwt          TokenGenerator
	resetBaseURL string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	resetWriter PasswordResetWriter,
	email EmailSender,
	jwt TokenGenerator,
	resetBaseURL string,
) *AuthService {
	return &AuthService{
		reader:       reader,
		writer:       writer,
		resetWriter:  resetWriter,
		email:        email,
		jwt:          jwt,
		resetBaseURL: resetBaseURL,
	}
}

// Register creates a new user and returns the persisted user with a signed token.
func (svc *AuthService) Register(ctx context.Context, input RegisterInput) (*models.UserDB, string, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" || input.Role == "" {
		return nil, "", ErrMissingFields
	}

	existing, err := svc.reader.GetByEmail(ctx, input.Email)
	if err != nil {
		logger.Log.Errorw("failed to check existing user", "email", input.Email, "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := models.UserDB{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         input.Role,
		CompanyName:  input.CompanyName,
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", input.Email, "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, saved.ID, saved.Email, saved.Role, saved.FirstName, saved.LastName)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return saved, token, nil
}

// Login authenticates a user by email and password and returns the user with
// a signed token. Unknown account and wrong password yield the same error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email, user.Role, user.FirstName, user.LastName)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// RequestPasswordReset issues a reset token for the account behind the given
// email and sends reset instructions. It succeeds silently when the account
// does not exist, and email delivery failures never surface to the caller.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up account for reset", "err", err)
		return err
	}
	if user == nil {
		// Respond identically whether or not the account exists.
		return nil
	}

	reset := models.PasswordResetDB{
		ID:         uuid.New(),
		UserID:     user.ID,
		ResetToken: uuid.New(),
		ExpiresAt:  time.Now().Add(resetTokenTTL),
	}
	if err := svc.resetWriter.Save(ctx, reset); err != nil {
		logger.Log.Errorw("failed to save reset token", "user_id", user.ID, "err", err)
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", svc.resetBaseURL, reset.ResetToken)
	if err := svc.email.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		// Delivery failure is logged by the facade and deliberately swallowed.
		logger.Log.Errorw("reset email delivery failed", "user_id", user.ID, "err", err)
	}

	return nil
}
