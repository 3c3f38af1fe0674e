package services

import (
	"context"

	"tasktrack-api/domain/dto"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
	DeleteUser(ctx context.Context, authUserID, targetUserID uint) error
}
