package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is the single rejection for every failed login.
	// Unknown email and wrong password are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidToken       = errors.New("invalid access token")
)

// AuthConfig holds the fixed admin identity and token settings. The shop has
// exactly one accepted credential pair; there is no user registry.
type AuthConfig struct {
	AdminEmail        string
	AdminName         string
	AdminPasswordHash []byte
	JWTSecret         []byte
	TokenTTL          time.Duration
}

// AccessClaims is the JWT payload issued on login.
type AccessClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (entities.User, error)
	ValidateAccessToken(token string) (*AccessClaims, error)
}

type AuthUseCase struct {
	sessions interfaces.ISessionRepository
	cfg      AuthConfig
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionRepository, cfg AuthConfig, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, cfg: cfg, logger: logger}
}

// Login checks the credentials against the fixed admin pair. On success the
// admin User is written to the session slot and a signed access token is
// returned. Credentials are never logged, not even on failure.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	// The bcrypt comparison runs regardless of the email match so both
	// failure paths take comparable time.
	passErr := bcrypt.CompareHashAndPassword(u.cfg.AdminPasswordHash, []byte(password))
	if email != strings.ToLower(u.cfg.AdminEmail) || passErr != nil {
		u.logger.Warn("login rejected")
		return entities.User{}, "", ErrInvalidCredentials
	}

	user := entities.User{
		ID:    "1",
		Name:  u.cfg.AdminName,
		Email: u.cfg.AdminEmail,
		Role:  entities.RoleAdmin,
	}
	if err := u.sessions.Put(ctx, user); err != nil {
		return entities.User{}, "", err
	}

	token, err := u.signAccessToken(user)
	if err != nil {
		return entities.User{}, "", err
	}

	u.logger.Info("login accepted", zap.String("user_id", user.ID))
	return user, token, nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	return u.sessions.Clear(ctx)
}

func (u *AuthUseCase) CurrentUser(ctx context.Context) (entities.User, error) {
	user, err := u.sessions.Current(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrNotLoggedIn
	}
	return user, nil
}

func (u *AuthUseCase) signAccessToken(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.cfg.JWTSecret)
}

func (u *AuthUseCase) ValidateAccessToken(token string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.cfg.JWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
