package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/models"
	"github.com/AlishaVyas/Medical-Document-Organizer-with-AI-Summarization/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Keeping the two indistinguishable prevents account enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service owns credential handling: it stores bcrypt hashes, never
// plaintext, and never hands either back to callers outside this package.
type Service struct {
	users repository.UserRepository
	cost  int
}

func NewService(users repository.UserRepository, bcryptCost int) *Service {
	return &Service{users: users, cost: bcryptCost}
}

// Register creates an account. A second signup with the same email fails
// with repository.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email/password and returns the account on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
