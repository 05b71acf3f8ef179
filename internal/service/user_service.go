package service

import (
	"context"
	"fmt"
	"strings"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/repository/specification"
	"notetaking-web/internal/repository/unitofwork"
)

const userModule = "user"

type IUserService interface {
	GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	// DeleteAccount removes the user and, through the foreign key, all their notes.
	DeleteAccount(ctx context.Context, userId uint) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func toProfileResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Pronoun:   user.DisplayPronoun(),
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) findUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uint) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userId, err)
	}
	if user == nil {
		return nil, apperror.NotFound("User", userId)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uint, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Pronoun = strings.TrimSpace(req.Pronoun)
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	if req.Pronoun == "" {
		user.Pronoun = nil
	} else {
		pronoun := req.Pronoun
		user.Pronoun = &pronoun
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", userId, err)
	}
	return toProfileResponse(user), nil
}

func (s *userService) DeleteAccount(ctx context.Context, userId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	rows, err := uow.UserRepository().Delete(ctx, userId)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", userId, err)
	}
	if rows == 0 {
		return apperror.NotFound("User", userId)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit account deletion: %w", err)
	}

	s.logger.Info(userModule, "account deleted", map[string]interface{}{"user_id": userId})
	return nil
}
