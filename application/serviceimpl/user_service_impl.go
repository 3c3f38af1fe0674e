package serviceimpl

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"tasktrack-api/domain/dto"
	"tasktrack-api/domain/models"
	"tasktrack-api/domain/repositories"
	"tasktrack-api/domain/services"
	"tasktrack-api/pkg/apperror"
	"tasktrack-api/pkg/logger"
	"tasktrack-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return apperror.BadRequest("a user is already registered with this e-mail")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return apperror.Internal("failed to create user")
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return apperror.Internal("failed to create user")
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "email", user.Email)

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return "", apperror.NotFound("user not found")
	}

	// Wrong password is 404 as well: the login contract is "no user matches
	// these credentials", not "this user exists but the password is wrong".
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", apperror.NotFound("user not found")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", apperror.Internal("failed to generate token")
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return token, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, authUserID, targetUserID uint) error {
	if authUserID != targetUserID {
		logger.WarnContext(ctx, "User deletion denied", "auth_user_id", authUserID, "target_user_id", targetUserID)
		return apperror.Unauthorized("invalid user")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		logger.WarnContext(ctx, "User not found for deletion", "user_id", targetUserID)
		return apperror.NotFound("user not found")
	}

	if err := s.userRepo.DeleteWithTasks(ctx, targetUserID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", targetUserID, "error", err)
		return apperror.Internal("failed to delete user")
	}

	logger.InfoContext(ctx, "User deleted with owned tasks", "user_id", targetUserID)

	return nil
}
