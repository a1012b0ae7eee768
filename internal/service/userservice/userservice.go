package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/internal/domain"
	"github.com/GlebRadaev/gobank/internal/notify"
	"github.com/GlebRadaev/gobank/internal/pg"
	"github.com/GlebRadaev/gobank/pkg/auth"
	"github.com/GlebRadaev/gobank/pkg/validate"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("old password was entered incorrectly")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Account, error)
	UpdateDetails(ctx context.Context, account *domain.Account) error
}

type AddressRepo interface {
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
}

type Notifier interface {
	Send(ctx context.Context, notifications ...notify.Notification)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type Service struct {
	users       UserRepo
	accounts    AccountRepo
	addresses   AddressRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	revocations TokenRevoker
	notifier    Notifier
	tokenTTL    time.Duration
}

func New(
	users UserRepo,
	accounts AccountRepo,
	addresses AddressRepo,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	revocations TokenRevoker,
	notifier Notifier,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		users:       users,
		accounts:    accounts,
		addresses:   addresses,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		revocations: revocations,
		notifier:    notifier,
		tokenTTL:    tokenTTL,
	}
}

// Register creates the user, its address and its account in one database transaction.
func (s *Service) Register(ctx context.Context, reg *domain.Registration) (*domain.Profile, error) {
	if err := s.checkUnique(ctx, reg.Username, reg.Email, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashService.HashPassword(reg.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	profile := &domain.Profile{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.Create(ctx, &domain.User{
			Username:     reg.Username,
			Email:        reg.Email,
			PasswordHash: hashedPassword,
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
		})
		if err != nil {
			return err
		}

		address := reg.Address
		address.UserID = user.ID
		createdAddress, err := s.addresses.Create(ctx, &address)
		if err != nil {
			return err
		}

		account, err := s.accounts.Create(ctx, &domain.Account{
			UserID:      user.ID,
			AccountType: reg.AccountType,
			AccountNo:   domain.AccountNoFor(user.ID),
			BirthDate:   reg.BirthDate,
			Gender:      reg.Gender,
			Balance:     decimal.Zero,
		})
		if err != nil {
			return err
		}

		profile.User = *user
		profile.Address = *createdAddress
		profile.Account = *account
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user", zap.String("username", reg.Username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered",
		zap.String("username", reg.Username), zap.Int("account_no", profile.Account.AccountNo))
	return profile, nil
}

// checkUnique reports every taken field at once; exceptID skips the user being edited.
func (s *Service) checkUnique(ctx context.Context, username, email string, exceptID int) error {
	var errs []error
	if username != "" {
		existing, err := s.users.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != exceptID {
			errs = append(errs, domain.ErrUsernameTaken)
		}
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != exceptID {
		errs = append(errs, domain.ErrEmailTaken)
	}
	if len(errs) > 0 {
		zap.L().Info("registration conflict", zap.String("username", username), zap.Errors("fields", errs))
	}
	return errors.Join(errs...)
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.String("username", username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.revocations.Revoke(ctx, claims.Id, claims.ExpiresAtTime()); err != nil {
		zap.L().Error("can't revoke token", zap.Int("user_id", claims.UserID), zap.Error(err))
		return err
	}
	zap.L().Info("user logged out", zap.Int("user_id", claims.UserID))
	return nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Profile returns the user with its account and address; the latter two are zero for admins.
func (s *Service) Profile(ctx context.Context, userID int) (*domain.Profile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := &domain.Profile{User: *user}

	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		profile.Account = *account
	}

	address, err := s.addresses.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if address != nil {
		profile.Address = *address
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, upd *domain.ProfileUpdate) (*domain.Profile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(user.Email, upd.Email) {
		if err := s.checkUnique(ctx, "", upd.Email, userID); err != nil {
			return nil, err
		}
	}

	user.FirstName = upd.FirstName
	user.LastName = upd.LastName
	user.Email = upd.Email

	profile := &domain.Profile{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}

		account, err := s.accounts.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			account, err = s.accounts.Create(ctx, &domain.Account{
				UserID:      userID,
				AccountType: upd.AccountType,
				AccountNo:   domain.AccountNoFor(userID),
				BirthDate:   upd.BirthDate,
				Gender:      upd.Gender,
				Balance:     decimal.Zero,
			})
			if err != nil {
				return err
			}
		} else {
			account.AccountType = upd.AccountType
			account.Gender = upd.Gender
			account.BirthDate = upd.BirthDate
			if err := s.accounts.UpdateDetails(ctx, account); err != nil {
				return err
			}
		}

		address, err := s.addresses.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		next := upd.Address
		next.UserID = userID
		if address == nil {
			address, err = s.addresses.Create(ctx, &next)
			if err != nil {
				return err
			}
		} else {
			next.ID = address.ID
			if err := s.addresses.Update(ctx, &next); err != nil {
				return err
			}
			address = &next
		}

		profile.User = *user
		profile.Account = *account
		profile.Address = *address
		return nil
	})
	if err != nil {
		zap.L().Error("can't update profile", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("profile updated", zap.Int("user_id", userID))
	return profile, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hashService.ComparePassword(user.PasswordHash, oldPassword) {
		return ErrWrongPassword
	}
	if strings.EqualFold(newPassword, user.Username) {
		return validate.Errors{"new_password1": "The password is too similar to the username."}
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	zap.L().Info("password changed", zap.Int("user_id", userID))
	s.notifier.Send(ctx, notify.Notification{Event: notify.EventPasswordChange, User: *user, Amount: decimal.Zero})
	return nil
}

// EnsureAdmin creates the bootstrap administrator when no user has that username yet.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.IsAdmin {
			zap.L().Warn("bootstrap admin username belongs to a regular user", zap.String("username", username))
		}
		return nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      true,
	})
	if err != nil {
		zap.L().Error("can't create admin", zap.Error(err))
		return err
	}
	zap.L().Info("admin user created", zap.String("username", username))
	return nil
}
