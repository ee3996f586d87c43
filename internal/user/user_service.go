package user

import (
	"context"
	"fmt"
	"time"

	"go-bizdash/internal/domain"
	"go-bizdash/internal/shared/contextutil"
	usererrors "go-bizdash/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const AccessTokenTTL = 24 * time.Hour

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type service struct {
	repo      Repository
	rdb       *redis.Client
	jwtSecret string
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, rdb *redis.Client, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		repo:      repo,
		rdb:       rdb,
		jwtSecret: jwtSecret,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested", zap.String("request_id", rid), zap.String("email", req.Email))

	role := domain.RoleGuest
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, usererrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)

	return mapToResponse(*u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login unknown email", zap.String("request_id", rid))
		return AuthResponse{}, usererrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login bad password",
			zap.String("request_id", rid),
			zap.String("user_id", u.ID.String()),
		)
		return AuthResponse{}, usererrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)

	return AuthResponse{
		User:        mapToResponse(*u),
		AccessToken: token,
		ExpiresIn:   int64(AccessTokenTTL.Seconds()),
	}, nil
}

// Logout denylists the token's jti in Redis for the remainder of its
// lifetime, so the stateless JWT stops working before it expires.
func (s *service) Logout(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return usererrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return usererrors.ErrInvalidToken
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return usererrors.ErrInvalidToken
	}

	ttl := AccessTokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		remaining := time.Unix(int64(exp), 0).Sub(s.now())
		if remaining <= 0 {
			return nil
		}
		ttl = remaining
	}

	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Set(ctx, domain.TokenDenylistPrefix+jti, "1", ttl).Err(); err != nil {
		s.logger.Error("denylist token failed", zap.String("jti", jti), zap.Error(err))
		return err
	}

	s.logger.Info("logout success", zap.String("jti", jti))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	rid := contextutil.GetRequestID(ctx)

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return usererrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("reset password bad current password",
			zap.String("request_id", rid),
			zap.String("user_id", u.ID.String()),
		)
		return usererrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, u.ID.String(), string(hashed)); err != nil {
		s.logger.Error("reset password persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("reset password success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)
	return nil
}

func (s *service) generateToken(u *User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"role":    string(u.Role),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
}
