package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"social_feed/internal/domain/auth/model"
	"social_feed/internal/domain/auth/repository"
	profileModel "social_feed/internal/domain/profile/model"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/apperr"
	"social_feed/pkg/cache"
	"social_feed/pkg/database"
	"social_feed/pkg/logger"
	"social_feed/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = apperr.New(apperr.ErrAlreadyExists, "User already registered")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthenticated, "Invalid login credentials")
)

// AuthService 账号注册、登录与登录态
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (*model.AuthResult, error)
	SignIn(ctx context.Context, params model.SignInParams) (*model.AuthResult, error)
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*authctx.Session, error)
	GetCurrentAccount(ctx context.Context) (*model.Account, error)
}

type authService struct {
	repo      repository.AccountRepository
	tokens    *utils.TokenManager
	blacklist cache.TokenBlacklist
	guard     authctx.Guard
}

func NewAuthService(repo repository.AccountRepository, tokens *utils.TokenManager, blacklist cache.TokenBlacklist, guard authctx.Guard) AuthService {
	return &authService{repo: repo, tokens: tokens, blacklist: blacklist, guard: guard}
}

// SignUp 注册并自动生成随机昵称和头像
func (s *authService) SignUp(ctx context.Context, params model.SignUpParams) (*model.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.AccountRow{
		Email:        normalizeEmail(params.Email),
		PasswordHash: string(hash),
	}
	nickname := randomNickname()
	image := randomProfileImage()
	profile := &profileModel.ProfileRow{Nickname: &nickname, ProfileImageURL: &image}

	if err := s.repo.CreateWithProfile(ctx, account, profile); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	logger.Log.Info("account created", zap.String("user_id", account.ID))
	return s.issue(*account)
}

func (s *authService) SignIn(ctx context.Context, params model.SignInParams) (*model.AuthResult, error) {
	account, err := s.repo.GetByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(params.Password)); err != nil {
		logger.Log.Warn("sign in rejected", zap.String("user_id", account.ID))
		return nil, ErrInvalidCredentials
	}
	return s.issue(*account)
}

func (s *authService) issue(account model.AccountRow) (*model.AuthResult, error) {
	token, claims, err := s.tokens.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.AuthResult{
		Account:     model.MapAccount(account),
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// SignOut 将当前 token 加入黑名单直到过期
func (s *authService) SignOut(ctx context.Context) error {
	session, ok := authctx.SessionFrom(ctx)
	if !ok {
		return apperr.ErrUnauthenticated
	}
	if err := s.blacklist.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return err
	}
	logger.Log.Debug("signed out", zap.String("user_id", session.Account.ID))
	return nil
}

// GetSession 匿名时返回 nil
func (s *authService) GetSession(ctx context.Context) (*authctx.Session, error) {
	session, ok := authctx.SessionFrom(ctx)
	if !ok {
		return nil, nil
	}
	return session, nil
}

// GetCurrentAccount 匿名或账号已不存在时返回 nil
func (s *authService) GetCurrentAccount(ctx context.Context) (*model.Account, error) {
	acc, err := s.guard.ResolveCurrentAccount(ctx)
	if err != nil || acc == nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, acc.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	account := model.MapAccount(*row)
	return &account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomNickname() string {
	return "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

func randomProfileImage() string {
	return fmt.Sprintf("https://picsum.photos/50/50?random=%d", time.Now().UnixMilli())
}
