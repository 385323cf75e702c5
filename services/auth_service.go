package services

import (
	"log/slog"
	"strings"
	"time"

	"campusfood/entity"
	"campusfood/pkg/apperr"
	"campusfood/repository"
	"campusfood/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB         *gorm.DB
	UserRepo   *repository.UserRepository
	VendorRepo *repository.VendorRepository
	Log        *slog.Logger

	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, vendors *repository.VendorRepository, log *slog.Logger, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB: db, UserRepo: users, VendorRepo: vendors, Log: log,
		jwtSecret: secret, jwtTTL: ttl,
	}
}

type RegisterIn struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     entity.Role `json:"role" binding:"required,oneof=customer vendor"`
	FullName string      `json:"full_name" binding:"required"`
	Phone    string      `json:"phone" binding:"required"`
}

// Register creates the user and issues an email verification code. Delivery
// is out of scope here; the code is logged so a dev setup can complete the
// flow without a mail provider.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Role:     in.Role,
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	code := uuid.NewString()
	ver := &entity.EmailVerification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := s.UserRepo.CreateVerification(ver); err != nil {
		return nil, err
	}
	s.Log.Info("verification code issued", "email", email, "code", code)

	return user, nil
}

func (s *AuthService) VerifyEmail(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return apperr.Validation("invalid verification code")
	}

	ver, err := s.UserRepo.FindActiveVerification(user.ID, strings.TrimSpace(code))
	if err != nil {
		return apperr.Validation("invalid verification code")
	}
	if time.Now().After(ver.ExpiresAt) {
		return apperr.Validation("verification code expired")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.UserRepo.MarkVerified(tx, user.ID, ver.ID)
	})
}

type CompleteProfileIn struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	VendorName string `json:"vendor_name"`
	Location   string `json:"location"`
}

// CompleteProfile fills in profile fields and, for vendor accounts, creates
// the vendor record on first completion.
func (s *AuthService) CompleteProfile(userID uint, in *CompleteProfileIn) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if v := strings.TrimSpace(in.FullName); v != "" {
		updates["full_name"] = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		updates["phone"] = v
	}
	if len(updates) > 0 {
		if err := s.UserRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}

	if user.Role == entity.RoleVendor {
		if _, err := s.VendorRepo.FindByUserID(userID); err == gorm.ErrRecordNotFound {
			name := strings.TrimSpace(in.VendorName)
			if name == "" {
				return nil, apperr.Validation("vendor_name is required for vendor accounts")
			}
			vendor := &entity.Vendor{
				UserID:          userID,
				VendorName:      name,
				Location:        strings.TrimSpace(in.Location),
				PickupAvailable: true,
			}
			if err := s.VendorRepo.Create(vendor); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}

	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	if err := s.UserRepo.TouchLastLogin(user.ID); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

// GetProfileWithVendor also resolves the vendor record for vendor accounts
// so clients learn their vendor_id at bootstrap.
func (s *AuthService) GetProfileWithVendor(userID uint) (*entity.User, *entity.Vendor, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user.Role != entity.RoleVendor {
		return user, nil, nil
	}
	vendor, err := s.VendorRepo.FindByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return user, vendor, nil
}
