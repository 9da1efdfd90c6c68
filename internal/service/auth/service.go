package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zenhr/zenhr-backend-go/internal/domain/auth"
	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/pkg/jwt"
)

type Service struct {
	employees  employee.Repository
	jwtService jwt.Service
}

func NewService(employees employee.Repository, jwtService jwt.Service) *Service {
	return &Service{employees: employees, jwtService: jwtService}
}

// Login checks the submitted credentials against the employee directory.
// Passwords are stored as bcrypt hashes only.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	emp, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("look up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(emp)
}

// LoginWithGoogle signs in an employee whose directory email matches a
// verified Google account email.
func (s *Service) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.LoginResponse, string, int64, error) {
	emp, err := s.employees.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrAccountNotFound
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("look up account: %w", err)
	}
	return s.issueTokens(emp)
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	employeeID, _ := claims["employee_id"].(string)

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrAccountNotFound
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.AccessRole)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        employee.ToResponse(emp),
	}, nil
}

// Logout revokes the presented refresh token.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

// Me returns the profile behind an authenticated employee id.
func (s *Service) Me(ctx context.Context, employeeID string) (employee.Response, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Response{}, auth.ErrAccountNotFound
	}
	return employee.ToResponse(emp), nil
}

func (s *Service) issueTokens(emp employee.Employee) (auth.LoginResponse, string, int64, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.AccessRole)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate refresh token: %w", err)
	}
	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        employee.ToResponse(emp),
	}, refreshToken, refreshExpiresAt, nil
}
