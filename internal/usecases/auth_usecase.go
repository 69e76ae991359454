package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"ecomus.backend/internal/domain/entities"
	domainerrors "ecomus.backend/internal/domain/errors"
	"ecomus.backend/internal/domain/repositories"
	"ecomus.backend/pkg/crypto"
	"ecomus.backend/pkg/jwt"
	"ecomus.backend/pkg/logger"
	"ecomus.backend/pkg/mailer"
	"ecomus.backend/pkg/usertoken"
)

// AuthUsecase handles account lifecycle and authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	uow         repositories.UnitOfWork
	tokens      *usertoken.Generator
	jwtService  *jwt.JWTService
	mail        mailer.Mailer
	siteDomain  string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uow repositories.UnitOfWork,
	tokens *usertoken.Generator,
	jwtService *jwt.JWTService,
	mail mailer.Mailer,
	siteDomain string,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
		tokens:      tokens,
		jwtService:  jwtService,
		mail:        mail,
		siteDomain:  siteDomain,
	}
}

// Register creates an inactive user with its profile and emails an
// activation link. The user and profile rows are written atomically.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.BadRequest("passwords do not match")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email is already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		IsActive:     false,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.profileRepo.Create(txCtx, &entities.Profile{UserID: user.ID})
	})
	if err != nil {
		return nil, err
	}

	token := u.tokens.Make(usertoken.ScopeActivation, user.ID, user.PasswordHash, user.IsActive)
	link := fmt.Sprintf("%s/api/v1/account/activate/%s/%s", u.siteDomain, usertoken.EncodeUID(user.ID), token)
	if err := u.mail.SendActivationEmail(ctx, user.Email, link); err != nil {
		// the account exists either way; the user can request a resend
		logger.Warn(ctx, "failed to send activation email",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// Activate verifies an activation link and marks the account active.
// Activating an already-active account succeeds without consuming
// anything; the bool reports whether it was already active.
func (u *AuthUsecase) Activate(ctx context.Context, uid, token string) (bool, error) {
	userID, err := usertoken.DecodeUID(uid)
	if err != nil {
		return false, domainerrors.InvalidToken("activation link is invalid")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, domainerrors.InvalidToken("activation link is invalid")
		}
		return false, err
	}

	if user.IsActive {
		return true, nil
	}

	if !u.tokens.Check(usertoken.ScopeActivation, user.ID, user.PasswordHash, user.IsActive, token) {
		return false, domainerrors.InvalidToken("activation link is invalid or has expired")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.SetActive(txCtx, user.ID); err != nil {
			return err
		}
		return u.profileRepo.SetEmailVerified(txCtx, user.ID)
	})
	if err != nil {
		return false, err
	}
	return false, nil
}

// Login authenticates an active user and returns a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, domainerrors.ErrAccountInactive
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, nil, err
	}
	return user, tokenPair, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetProfile gets a profile by its own ID
func (u *AuthUsecase) GetProfile(ctx context.Context, id uint) (*entities.Profile, error) {
	return u.profileRepo.GetByID(ctx, id)
}

// ChangePassword swaps a logged-in user's password after checking the
// current one. Outstanding reset links die with the old hash.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uint, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, passwordHash)
}

// RequestPasswordReset emails a reset link to a registered address.
// Unknown addresses report not found.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, input *entities.ResetPasswordRequestInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	token := u.tokens.Make(usertoken.ScopePasswordReset, user.ID, user.PasswordHash, user.IsActive)
	link := fmt.Sprintf("%s/api/v1/account/reset_password/%s/%s", u.siteDomain, usertoken.EncodeUID(user.ID), token)
	return u.mail.SendPasswordResetEmail(ctx, user.Email, link)
}

// ConfirmPasswordReset verifies a reset link and sets the new password.
// The token stops verifying once it is used because the stored hash
// changes with it.
func (u *AuthUsecase) ConfirmPasswordReset(ctx context.Context, input *entities.ResetPasswordConfirmInput) error {
	userID, err := usertoken.DecodeUID(input.UID)
	if err != nil {
		return domainerrors.InvalidToken("reset link is invalid")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.InvalidToken("reset link is invalid")
		}
		return err
	}

	if !u.tokens.Check(usertoken.ScopePasswordReset, user.ID, user.PasswordHash, user.IsActive, input.Token) {
		return domainerrors.InvalidToken("reset link is invalid or has expired")
	}

	if len(input.NewPassword) < 8 {
		return domainerrors.BadRequest("new password must be at least 8 characters")
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}
