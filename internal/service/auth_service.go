package service

import (
	"context"
	"errors"
	"log/slog"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/redis"
	"reeldine/internal/pkg/security"
	"reeldine/internal/repository"

	"github.com/go-sql-driver/mysql"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req *dto.UserRegisterDTO) (*dto.AuthResultDTO, error)
	RegisterPartner(ctx context.Context, req *dto.PartnerRegisterDTO) (*dto.AuthResultDTO, error)
	LoginUser(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error)
	LoginPartner(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	userRepo    repository.UserRepo
	partnerRepo repository.PartnerRepo
}

func NewAuthService(userRepo repository.UserRepo, partnerRepo repository.PartnerRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, partnerRepo: partnerRepo}
}

// isDuplicateEntry recognizes the MySQL unique-key violation so racing
// registrations surface as a conflict rather than a 500.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *AuthServiceImpl) RegisterUser(ctx context.Context, req *dto.UserRegisterDTO) (*dto.AuthResultDTO, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		slog.ErrorContext(ctx, "lookup user by email", "error", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		slog.ErrorContext(ctx, "hash password", "error", err)
		return nil, UnExpectedError
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		IsActive: true,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		slog.ErrorContext(ctx, "create user", "error", err)
		return nil, UnExpectedError
	}

	return s.issueToken(ctx, user.ID, consts.KindUser, user.FullName)
}

func (s *AuthServiceImpl) RegisterPartner(ctx context.Context, req *dto.PartnerRegisterDTO) (*dto.AuthResultDTO, error) {
	existing, err := s.partnerRepo.GetPartnerByEmail(ctx, req.Email)
	if err != nil {
		slog.ErrorContext(ctx, "lookup partner by email", "error", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		slog.ErrorContext(ctx, "hash password", "error", err)
		return nil, UnExpectedError
	}

	partner := &model.FoodPartner{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Address:     req.Address,
		Email:       req.Email,
		Password:    hashed,
		LocationLng: req.Lng,
		LocationLat: req.Lat,
		IsActive:    true,
	}
	if err = s.partnerRepo.CreatePartner(ctx, partner); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrEmailTaken
		}
		slog.ErrorContext(ctx, "create partner", "error", err)
		return nil, UnExpectedError
	}

	return s.issueToken(ctx, partner.ID, consts.KindPartner, partner.Name)
}

func (s *AuthServiceImpl) LoginUser(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		slog.ErrorContext(ctx, "lookup user by email", "error", err)
		return nil, UnExpectedError
	}
	if user == nil || !user.IsActive || security.CheckPasswordHash(req.Password, user.Password) != nil {
		return nil, ErrInvalidCredentials
	}
	if err = s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		slog.WarnContext(ctx, "touch last login", "error", err)
	}
	return s.issueToken(ctx, user.ID, consts.KindUser, user.FullName)
}

func (s *AuthServiceImpl) LoginPartner(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error) {
	partner, err := s.partnerRepo.GetPartnerByEmail(ctx, req.Email)
	if err != nil {
		slog.ErrorContext(ctx, "lookup partner by email", "error", err)
		return nil, UnExpectedError
	}
	if partner == nil || !partner.IsActive || security.CheckPasswordHash(req.Password, partner.Password) != nil {
		return nil, ErrInvalidCredentials
	}
	if err = s.partnerRepo.TouchLastLogin(ctx, partner.ID); err != nil {
		slog.WarnContext(ctx, "touch last login", "error", err)
	}
	return s.issueToken(ctx, partner.ID, consts.KindPartner, partner.Name)
}

// Logout denylists the token's signature until the token itself expires.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	if err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+sig, "1", security.TokenLifetime()); err != nil {
		slog.WarnContext(ctx, "denylist token", "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) issueToken(ctx context.Context, id uint64, kind, name string) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(id, kind)
	if err != nil {
		slog.ErrorContext(ctx, "generate token", "error", err)
		return nil, UnExpectedError
	}
	return &dto.AuthResultDTO{Token: token, Kind: kind, ID: id, Name: name}, nil
}
