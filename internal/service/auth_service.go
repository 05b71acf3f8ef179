package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"notetaking-web/internal/dto"
	"notetaking-web/internal/entity"
	"notetaking-web/internal/pkg/apperror"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/pkg/serverutils"
	"notetaking-web/internal/repository/contract"
	"notetaking-web/internal/repository/specification"
	"notetaking-web/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const authModule = "auth"

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
	// Serialize opens a session for user and returns its token.
	Serialize(ctx context.Context, user *entity.User) (string, error)
	// Deserialize resolves a session token. It fails closed.
	Deserialize(ctx context.Context, token string) (*entity.User, error)
	Logout(ctx context.Context, token string) error
}

type AuthOptions struct {
	MinPasswordLength int
	BcryptCost        int
	SessionTTL        time.Duration
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   contract.SessionRepository
	opts       AuthOptions
	logger     logger.ILogger
	// dummyHash is compared on unknown emails so both login failures cost one bcrypt.
	dummyHash []byte
	compare   func(hash, password []byte) error
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions contract.SessionRepository, opts AuthOptions, log logger.ILogger) IAuthService {
	if opts.MinPasswordLength <= 0 {
		opts.MinPasswordLength = 6
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), opts.BcryptCost)
	if err != nil {
		log.Warn(authModule, "dummy hash unavailable", map[string]interface{}{"error": err})
	}
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		opts:       opts,
		logger:     log,
		dummyHash:  dummyHash,
		compare:    bcrypt.CompareHashAndPassword,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < s.opts.MinPasswordLength {
		return nil, apperror.ValidationFailed("password",
			fmt.Sprintf("Password must be at least %d characters.", s.opts.MinPasswordLength))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, apperror.DuplicateEmail(req.Email)
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.ValidationFailed("password", "Password must be at most 72 bytes.")
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Save
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.DuplicateEmail(req.Email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info(authModule, "user registered", map[string]interface{}{"user_id": user.Id})
	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		_ = s.compare(s.dummyHash, []byte(req.Password))
		s.logger.Warn(authModule, "login rejected", map[string]interface{}{"reason": apperror.ErrUserNotFound.Error()})
		return nil, apperror.InvalidCredentials(apperror.ErrUserNotFound)
	}

	if err := s.compare([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn(authModule, "login rejected", map[string]interface{}{
			"reason":  apperror.ErrWrongPassword.Error(),
			"user_id": user.Id,
		})
		return nil, apperror.InvalidCredentials(apperror.ErrWrongPassword)
	}

	return user, nil
}

func (s *authService) Serialize(ctx context.Context, user *entity.User) (string, error) {
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, user.Id, s.opts.SessionTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

func (s *authService) Deserialize(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, apperror.Unauthenticated()
	}

	userId, ok, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.logger.Error(authModule, "session lookup failed", map[string]interface{}{"error": err})
		return nil, apperror.Unauthenticated()
	}
	if !ok {
		return nil, apperror.Unauthenticated()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		s.logger.Error(authModule, "session user lookup failed", map[string]interface{}{"error": err, "user_id": userId})
		return nil, apperror.Unauthenticated()
	}
	if user == nil {
		// Account is gone; the session must not outlive it.
		_ = s.sessions.Delete(ctx, token)
		return nil, apperror.Unauthenticated()
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
