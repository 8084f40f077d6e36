package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"social_feed/internal/domain/auth/model"
	profileModel "social_feed/internal/domain/profile/model"
	"social_feed/internal/pkg/authctx"
	"social_feed/pkg/apperr"
	"social_feed/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateWithProfile(ctx context.Context, account *model.AccountRow, profile *profileModel.ProfileRow) error {
	args := m.Called(ctx, account, profile)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*model.AccountRow, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountRow), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*model.AccountRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountRow), args.Error(1)
}

type memoryBlacklist map[string]time.Time

func (m memoryBlacklist) Revoke(_ context.Context, id string, exp time.Time) error {
	m[id] = exp
	return nil
}

func (m memoryBlacklist) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

func newAuthService(repo *MockAccountRepository, bl memoryBlacklist) (AuthService, *utils.TokenManager) {
	tokens := utils.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	return NewAuthService(repo, tokens, bl, authctx.NewGuard()), tokens
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates account with random profile", func(t *testing.T) {
		repo := new(MockAccountRepository)
		svc, tokens := newAuthService(repo, memoryBlacklist{})

		var profile *profileModel.ProfileRow
		repo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				acc := args.Get(1).(*model.AccountRow)
				acc.ID = "u-1"
				profile = args.Get(2).(*profileModel.ProfileRow)
			}).
			Return(nil)

		res, err := svc.SignUp(ctx, model.SignUpParams{Email: " Neo@Example.com ", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "u-1", res.Account.ID)
		assert.Equal(t, "neo@example.com", res.Account.Email)

		require.NotNil(t, profile)
		assert.True(t, strings.HasPrefix(*profile.Nickname, "user_"))
		assert.Len(t, *profile.Nickname, len("user_")+6)
		assert.True(t, strings.HasPrefix(*profile.ProfileImageURL, "https://picsum.photos/50/50?random="))

		claims, err := tokens.ParseToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)

		acc := repo.Calls[0].Arguments.Get(1).(*model.AccountRow)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("secret1")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo := new(MockAccountRepository)
		svc, _ := newAuthService(repo, memoryBlacklist{})
		repo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := svc.SignUp(ctx, model.SignUpParams{Email: "neo@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	row := &model.AccountRow{Email: "neo@example.com", PasswordHash: string(hash)}
	row.ID = "u-1"

	repo := new(MockAccountRepository)
	svc, _ := newAuthService(repo, memoryBlacklist{})
	repo.On("GetByEmail", ctx, "neo@example.com").Return(row, nil)
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	t.Run("Valid", func(t *testing.T) {
		res, err := svc.SignIn(ctx, model.SignInParams{Email: "NEO@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.True(t, res.ExpiresAt.After(time.Now()))
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.SignIn(ctx, model.SignInParams{Email: "neo@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := svc.SignIn(ctx, model.SignInParams{Email: "ghost@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}

func TestSignOut(t *testing.T) {
	bl := memoryBlacklist{}
	svc, _ := newAuthService(new(MockAccountRepository), bl)

	assert.ErrorIs(t, svc.SignOut(context.Background()), apperr.ErrUnauthenticated)

	exp := time.Now().Add(time.Hour)
	ctx := authctx.WithSession(context.Background(), &authctx.Session{
		Account:   authctx.Account{ID: "u-1"},
		TokenID:   "jti-1",
		ExpiresAt: exp,
	})
	require.NoError(t, svc.SignOut(ctx))
	assert.Equal(t, exp, bl["jti-1"])
}

func TestGetCurrentAccount(t *testing.T) {
	repo := new(MockAccountRepository)
	svc, _ := newAuthService(repo, memoryBlacklist{})

	acc, err := svc.GetCurrentAccount(context.Background())
	require.NoError(t, err)
	assert.Nil(t, acc)

	session, err := svc.GetSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)

	ctx := authctx.ForAccount(context.Background(), "gone")
	repo.On("GetByID", ctx, "gone").Return(nil, gorm.ErrRecordNotFound)

	acc, err = svc.GetCurrentAccount(ctx)
	require.NoError(t, err)
	assert.Nil(t, acc)
}
