// Package services contains the application use cases coordinating the
// relational account store, the graph repository, and the token service.
package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/person"
	"github.com/Zzzisey/hackson/domain/user"
	"github.com/Zzzisey/hackson/pkg/auth"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

// AuthService implements registration and login. Registration spans both
// stores without a transaction: the account row is authoritative, the Person
// node is a best-effort companion write.
type AuthService struct {
	users   ports.UserStore
	persons ports.PersonRepository
	tokens  *auth.TokenService
	logger  *zap.Logger
}

// NewAuthService creates the auth use cases.
func NewAuthService(users ports.UserStore, persons ports.PersonRepository, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:   users,
		persons: persons,
		tokens:  tokens,
		logger:  logger,
	}
}

// Token is a bearer access token response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates an account and then tries to create a matching Person
// node in the graph. A graph failure is logged and swallowed: the account
// stays usable with is_linked false, and no rollback is attempted.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password").WithCause(err)
	}

	u := &user.User{
		Email:          email,
		HashedPassword: string(hash),
		FullName:       fullName,
		IsActive:       true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.linkPersonNode(ctx, u)
	return u, nil
}

// linkPersonNode creates the graph companion for a fresh account and records
// the back-reference. Both steps are best-effort.
func (s *AuthService) linkPersonNode(ctx context.Context, u *user.User) {
	name := u.FullName
	if name == "" {
		name = u.Email
	}

	p, err := s.persons.Create(ctx, person.CreateFields{
		Name:       name,
		SourceType: person.SourceTypeUserCreated,
		CreatedBy:  &u.Email,
	})
	if err != nil {
		s.logger.Warn("person node creation failed during registration",
			zap.String("email", u.Email),
			zap.Error(err))
		return
	}

	if err := s.users.SetPersonLink(ctx, u.ID, p.ID); err != nil {
		s.logger.Warn("person link update failed during registration",
			zap.String("email", u.Email),
			zap.String("person_id", p.ID),
			zap.Error(err))
		return
	}

	u.LinkedPersonID = &p.ID
	u.IsLinked = true
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password collapse into the same unauthorized error; an inactive
// account is reported distinctly.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewUnauthorizedError("incorrect email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("incorrect email or password")
	}

	if !u.IsActive {
		return nil, apperrors.NewValidationError("inactive user")
	}

	signed, err := s.tokens.Generate(u.Email)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token").WithCause(err)
	}

	return &Token{AccessToken: signed, TokenType: "bearer"}, nil
}
