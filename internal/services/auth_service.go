package services

import (
	"context"
	"errors"
	"log"

	"github.com/biribar/biribar-backend/internal/config"
	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"github.com/biribar/biribar-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a failed login. The handler maps it
// to a generic message so email probing stays unrewarding.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService defines the interface for dashboard authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (string, error) // Returns JWT token
	GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	EnsureBootstrapAdmin(ctx context.Context) error
}

type authService struct {
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies the credentials and returns a signed JWT
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, s.cfg)
}

// GetAdminByID fetches a dashboard account
func (s *authService) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error) {
	return s.adminRepo.FindByID(ctx, id)
}

// EnsureBootstrapAdmin creates the first dashboard account from the
// configured credentials when the collection is empty. No-op otherwise, or
// when no credentials are configured.
func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		log.Println("[WARN] no admin users exist and no bootstrap credentials configured")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Email:    s.cfg.Admin.Email,
		Password: string(hashed),
		Role:     "admin",
	}
	return s.adminRepo.Create(ctx, admin)
}
