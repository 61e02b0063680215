package user

import (
	"context"
	"fmt"

	"lenslink/models"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account; email and username must be unused.
func (s *DefaultUserService) Register(in RegisterInput) (*models.User, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmailOrUsername(in.Email, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError(utils.MsgUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered", zap.String("userID", u.ID))
	return u, nil
}

// Authenticate verifies credentials and issues a token pair. The refresh
// token is stored bcrypt-hashed so a database leak cannot replay sessions.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, utils.UnauthorizedError(utils.MsgAuthFailed)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.UnauthorizedError(utils.MsgAuthFailed)
	}

	accessToken, err := utils.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshHash, err := bcrypt.GenerateFromPassword([]byte(utils.HashToken(refreshToken)), 10)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := s.Repo.UpdateFields(u.ID, map[string]any{"refreshTokenHash": string(refreshHash)}); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &AuthResponse{User: u, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout clears the stored refresh token and evicts the cached auth session.
func (s *DefaultUserService) Logout(userID string) error {
	if err := s.Repo.UpdateFields(userID, map[string]any{"refreshTokenHash": ""}); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to evict auth cache entry", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// GetUserByID retrieves an account by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, utils.NotFoundError(utils.MsgUserNotFound)
	}
	return u, nil
}
