package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"grafica_gestao/internal/domain/entities"
	mock_interfaces "grafica_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return AuthConfig{
		AdminEmail:        "admin@gestao.com",
		AdminName:         "Wesley Oliveira",
		AdminPasswordHash: hash,
		JWTSecret:         []byte("test-secret"),
		TokenTTL:          time.Hour,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("success writes session and signs token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

		sessions.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user entities.User) error {
				if user.ID != "1" || user.Name != "Wesley Oliveira" || user.Role != entities.RoleAdmin {
					t.Fatalf("unexpected session user: %+v", user)
				}
				return nil
			},
		)

		user, token, err := uc.Login(context.Background(), "  Admin@Gestao.com ", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "1" {
			t.Fatalf("unexpected user: %+v", user)
		}
		if token == "" {
			t.Fatalf("expected a signed token")
		}

		claims, err := uc.ValidateAccessToken(token)
		if err != nil {
			t.Fatalf("token should validate: %v", err)
		}
		if claims.Name != "Wesley Oliveira" || claims.Subject != "1" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong password leaves session untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

		_, _, err := uc.Login(context.Background(), "admin@gestao.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong email and wrong password are indistinguishable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

		_, _, errEmail := uc.Login(context.Background(), "other@gestao.com", "admin")
		_, _, errPass := uc.Login(context.Background(), "admin@gestao.com", "nope")
		if !errors.Is(errEmail, ErrInvalidCredentials) || !errors.Is(errPass, ErrInvalidCredentials) {
			t.Fatalf("expected uniform rejection, got %v / %v", errEmail, errPass)
		}
	})
}

func TestAuthUseCase_CurrentUser(t *testing.T) {
	t.Run("zero session means not logged in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

		sessions.EXPECT().Current(gomock.Any()).Return(entities.User{}, nil)

		_, err := uc.CurrentUser(context.Background())
		if !errors.Is(err, ErrNotLoggedIn) {
			t.Fatalf("expected ErrNotLoggedIn, got %v", err)
		}
	})

	t.Run("active session returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

		sessions.EXPECT().Current(gomock.Any()).Return(entities.User{ID: "1", Name: "Wesley Oliveira"}, nil)

		user, err := uc.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "Wesley Oliveira" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewAuthUseCase(sessions, testAuthConfig(t), zap.NewNop())

	sessions.EXPECT().Clear(gomock.Any()).Return(nil)

	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthUseCase_ValidateAccessToken(t *testing.T) {
	uc := NewAuthUseCase(nil, testAuthConfig(t), zap.NewNop())

	t.Run("garbage token", func(t *testing.T) {
		if _, err := uc.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherCfg := testAuthConfig(t)
		otherCfg.JWTSecret = []byte("other-secret")
		other := NewAuthUseCase(nil, otherCfg, zap.NewNop())

		token, err := other.signAccessToken(entities.User{ID: "1", Name: "Wesley Oliveira", Role: entities.RoleAdmin})
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := uc.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		cfg := testAuthConfig(t)
		cfg.TokenTTL = -time.Minute
		expired := NewAuthUseCase(nil, cfg, zap.NewNop())

		token, err := expired.signAccessToken(entities.User{ID: "1"})
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := uc.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
