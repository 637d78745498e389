package service

import (
	"context"
	"errors"
	"testing"

	"reeldine/internal/api/dto"
	"reeldine/internal/pkg/security"
	"reeldine/internal/repository"

	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	security.InitJWT("test-secret", 1)
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db), repository.NewPartnerRepo(db))
	return svc, db
}

func TestUserRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	reg, err := svc.RegisterUser(ctx, &dto.UserRegisterDTO{
		FullName: "Grace",
		Email:    "grace@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if reg.Token == "" || reg.Kind != "user" {
		t.Errorf("register result = %+v", reg)
	}

	claims, err := security.ValidateToken(reg.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.SubjectID != reg.ID || claims.Kind != "user" {
		t.Errorf("claims = %+v", claims)
	}

	login, err := svc.LoginUser(ctx, &dto.CredentialDTO{Email: "grace@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if login.ID != reg.ID {
		t.Errorf("login id = %d, want %d", login.ID, reg.ID)
	}

	if _, err = svc.LoginUser(ctx, &dto.CredentialDTO{Email: "grace@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err = svc.LoginUser(ctx, &dto.CredentialDTO{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	req := &dto.UserRegisterDTO{FullName: "Henry", Email: "henry@example.com", Password: "secret123"}
	if _, err := svc.RegisterUser(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.RegisterUser(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate register err = %v, want ErrEmailTaken", err)
	}
}

func TestPartnerRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	reg, err := svc.RegisterPartner(ctx, &dto.PartnerRegisterDTO{
		Name:        "WokStar",
		ContactName: "Ivy",
		Phone:       "555-0101",
		Address:     "2 Food Ct",
		Email:       "wok@example.com",
		Password:    "secret123",
		Lng:         103.85,
		Lat:         1.29,
	})
	if err != nil {
		t.Fatalf("RegisterPartner: %v", err)
	}
	if reg.Kind != "partner" || reg.Name != "WokStar" {
		t.Errorf("register result = %+v", reg)
	}

	if _, err = svc.LoginPartner(ctx, &dto.CredentialDTO{Email: "wok@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("LoginPartner: %v", err)
	}
	// a partner's credentials must not work on the user login path
	if _, err = svc.LoginUser(ctx, &dto.CredentialDTO{Email: "wok@example.com", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("cross-kind login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutWithMalformedToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if err := svc.Logout(context.Background(), "not-a-jwt"); !errors.Is(err, UnauthorizedError) {
		t.Errorf("err = %v, want UnauthorizedError", err)
	}
}
