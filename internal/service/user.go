package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/log"
)

type UserService interface {
	Register(ctx context.Context, req *v1.RegisterRequest) error
	Login(ctx context.Context, req *v1.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error)
	UpdateProfile(ctx context.Context, userId string, req *v1.UpdateProfileRequest) error
}

func NewUserService(
	service *Service,
	userRepo repository.UserRepository,
	logger *log.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		Service:  service,
		logger:   logger,
	}
}

type userService struct {
	userRepo repository.UserRepository
	*Service
	logger *log.Logger
}

func (s *userService) Register(ctx context.Context, req *v1.RegisterRequest) error {
	if user, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		s.logger.WithContext(ctx).Error("userRepo.GetByEmail error", zap.Error(err))
		return v1.ErrInternalServerError
	} else if user != nil {
		return v1.ErrEmailAlreadyUse
	}
	if user, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		s.logger.WithContext(ctx).Error("userRepo.GetByUsername error", zap.Error(err))
		return v1.ErrInternalServerError
	} else if user != nil {
		return v1.ErrUsernameAlreadyUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userId, err := s.sid.GenString()
	if err != nil {
		return err
	}
	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	user := &model.User{
		UserId:   userId,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err = s.userRepo.Create(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("userRepo.Create error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *userService) Login(ctx context.Context, req *v1.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByAccount(ctx, req.Account)
	if err != nil {
		return "", v1.ErrInternalServerError
	}
	if user == nil {
		return "", v1.ErrUnauthorized
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", v1.ErrUnauthorized
	}
	token, err := s.jwt.GenToken(user.UserId, user.Role, time.Now().Add(time.Hour*24*7))
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*v1.GetProfileResponseData, error) {
	user, err := s.userRepo.GetByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, v1.ErrNotFound
	}
	return &v1.GetProfileResponseData{
		UserId:   user.UserId,
		Username: user.Username,
		Email:    user.Email,
		Nickname: user.Nickname,
		Role:     user.Role,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId string, req *v1.UpdateProfileRequest) error {
	user, err := s.userRepo.GetByID(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return v1.ErrNotFound
	}

	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.NewPassword != "" {
		if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
			return v1.ErrUnauthorized
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hashedPassword)
	}

	if err = s.userRepo.Update(ctx, user); err != nil {
		s.logger.WithContext(ctx).Error("userRepo.Update error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}
