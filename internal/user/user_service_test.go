package user_test

import (
	"context"
	"strings"
	"testing"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/user"
	usererrors "go-bizdash/internal/user/errors"

	userMock "go-bizdash/internal/user/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type serviceDeps struct {
	service   user.Service
	repo      *userMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := userMock.NewMockRepository(ctrl)

	svc := user.NewService(repo, rdb, testJWTSecret)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	validReq := func() user.RegisterRequest {
		return user.RegisterRequest{
			Email:     "amina@bizdash.ba",
			Password:  "correct horse",
			FirstName: "Amina",
			LastName:  "Begic",
		}
	}

	t.Run("success - defaults to guest role", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()

		deps.repo.EXPECT().
			FindByEmail(ctx, req.Email).
			Return(nil, gorm.ErrRecordNotFound)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, domain.RoleGuest, u.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)))
				assert.NotEqual(t, req.Password, u.Password)
				return nil
			})

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Guest", resp.Role)
		assert.Equal(t, req.Email, resp.Email)
	})

	t.Run("explicit admin role", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()
		req.Role = "Admin"

		deps.repo.EXPECT().FindByEmail(ctx, req.Email).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *user.User) error {
				assert.Equal(t, domain.RoleAdmin, u.Role)
				return nil
			})

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Admin", resp.Role)
	})

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()
		req.Role = "Superuser"

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("email already taken", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validReq()

		deps.repo.EXPECT().
			FindByEmail(ctx, req.Email).
			Return(&user.User{ID: uuid.New(), Email: req.Email}, nil)

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success - returns parseable token", func(t *testing.T) {
		deps := setupServiceTest(t)

		userID := uuid.New()
		deps.repo.EXPECT().
			FindByEmail(ctx, "amina@bizdash.ba").
			Return(&user.User{
				ID:       userID,
				Email:    "amina@bizdash.ba",
				Password: hashPassword(t, "correct horse"),
				Role:     domain.RoleAdmin,
			}, nil)

		resp, err := deps.service.Login(ctx, user.LoginRequest{
			Email:    "amina@bizdash.ba",
			Password: "correct horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, int64(user.AccessTokenTTL.Seconds()), resp.ExpiresIn)

		token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, userID.String(), claims["user_id"])
		assert.Equal(t, "Admin", claims["role"])
		assert.NotEmpty(t, claims["jti"])
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "nobody@bizdash.ba").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, user.LoginRequest{
			Email:    "nobody@bizdash.ba",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "amina@bizdash.ba").
			Return(&user.User{
				ID:       uuid.New(),
				Password: hashPassword(t, "correct horse"),
			}, nil)

		_, err := deps.service.Login(ctx, user.LoginRequest{
			Email:    "amina@bizdash.ba",
			Password: "wrong horse",
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	login := func(t *testing.T, deps *serviceDeps) string {
		t.Helper()
		deps.repo.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(&user.User{
				ID:       uuid.New(),
				Password: hashPassword(t, "correct horse"),
				Role:     domain.RoleGuest,
			}, nil)

		resp, err := deps.service.Login(ctx, user.LoginRequest{
			Email:    "amina@bizdash.ba",
			Password: "correct horse",
		})
		assert.NoError(t, err)
		return resp.AccessToken
	}

	t.Run("denylists the token jti", func(t *testing.T) {
		deps := setupServiceTest(t)

		token := login(t, deps)

		parsed, _ := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		jti := parsed.Claims.(jwt.MapClaims)["jti"].(string)

		// The TTL is the token's remaining lifetime; match on the key only.
		deps.redismock.CustomMatch(func(expected, actual []interface{}) error {
			assert.Equal(t, domain.TokenDenylistPrefix+jti, actual[1])
			return nil
		}).ExpectSet(domain.TokenDenylistPrefix+jti, "1", user.AccessTokenTTL).SetVal("OK")

		err := deps.service.Logout(ctx, token)

		assert.NoError(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Logout(ctx, "not.a.token")

		assert.ErrorIs(t, err, usererrors.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		deps := setupServiceTest(t)

		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.NewString(),
			"jti":     uuid.NewString(),
		})
		tokenString, err := forged.SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		err = deps.service.Logout(ctx, tokenString)

		assert.ErrorIs(t, err, usererrors.ErrInvalidToken)
	})

	t.Run("token without jti", func(t *testing.T) {
		deps := setupServiceTest(t)

		bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.NewString(),
		})
		tokenString, err := bare.SignedString([]byte(testJWTSecret))
		assert.NoError(t, err)

		err = deps.service.Logout(ctx, tokenString)

		assert.ErrorIs(t, err, usererrors.ErrInvalidToken)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		userID := uuid.New()
		deps.repo.EXPECT().
			FindByEmail(ctx, "amina@bizdash.ba").
			Return(&user.User{
				ID:       userID,
				Email:    "amina@bizdash.ba",
				Password: hashPassword(t, "old password"),
			}, nil)

		deps.repo.EXPECT().
			UpdatePassword(ctx, userID.String(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id, hashed string) error {
				assert.True(t, strings.HasPrefix(hashed, "$2"))
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("new password")))
				return nil
			})

		err := deps.service.ResetPassword(ctx, user.ResetPasswordRequest{
			Email:           "amina@bizdash.ba",
			CurrentPassword: "old password",
			NewPassword:     "new password",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "amina@bizdash.ba").
			Return(&user.User{
				ID:       uuid.New(),
				Password: hashPassword(t, "old password"),
			}, nil)

		err := deps.service.ResetPassword(ctx, user.ResetPasswordRequest{
			Email:           "amina@bizdash.ba",
			CurrentPassword: "guessed password",
			NewPassword:     "new password",
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByEmail(ctx, "nobody@bizdash.ba").
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.ResetPassword(ctx, user.ResetPasswordRequest{
			Email:           "nobody@bizdash.ba",
			CurrentPassword: "whatever",
			NewPassword:     "new password",
		})

		assert.ErrorIs(t, err, usererrors.ErrInvalidCredentials)
	})
}
