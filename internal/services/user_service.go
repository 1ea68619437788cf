package services

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
	"estateBack/utils"
)

const refreshTokenTTL = 60 * 24 * time.Hour

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if user.Email == "" || len(user.Password) < 8 {
		return models.User{}, models.ErrInvalidCredentials
	}
	if !models.ValidRole(user.Role) {
		return models.User{}, models.ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)
	user.CreatedAt = time.Now()

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewAccessToken(user.ID, user.Role)
	if err != nil {
		log.Printf("error signing access token: %v", err)
		return models.SignInResponse{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}

	session := models.Session{
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{
		Role: user.Role,
		Tokens: models.Tokens{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (s *UserService) LogOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSession(ctx, userID)
}
