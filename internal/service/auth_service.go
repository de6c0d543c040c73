package service

import (
	"fmt"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"
	"go-fabshop-api/pkg/jwt"

	"github.com/google/uuid"
)

type AuthService interface {
	Login(username, accessCode string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.WorkerResponse, error)
}

// LoginResponse is what the scanner frontend stores after a successful login.
// The token is advisory; no endpoint requires it.
type LoginResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type authService struct {
	workerRepo repository.WorkerRepository
}

func NewAuthService(workerRepo repository.WorkerRepository) AuthService {
	return &authService{workerRepo: workerRepo}
}

// Login checks the presented access code against the stored one with plain
// string equality. The codes are deliberately not hashed: this is advisory
// access control for an internal tool, and hashing would invalidate every
// code already handed out on the shop floor.
func (s *authService) Login(username, accessCode string) (*LoginResponse, error) {
	worker, err := s.workerRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if accessCode != worker.AccessCode {
		return nil, ErrInvalidCredentials
	}

	// Rotate the token version so tokens from earlier logins stop
	// validating.
	tokenVersion := uuid.New().String()
	if err := s.workerRepo.UpdateTokenVersion(worker.ID, tokenVersion); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	token, err := jwt.GenerateToken(worker.ID, worker.Username, tokenVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		ID:       worker.ID,
		Username: worker.Username,
		Token:    token,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.WorkerResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}

	worker, err := s.workerRepo.FindByID(claims.WorkerID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if worker.TokenVersion != claims.TokenVersion {
		return nil, fmt.Errorf("%w: session superseded by a newer login", ErrInvalidCredentials)
	}

	resp := worker.ToResponse()
	return &resp, nil
}
