package auth

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintrackio/fintrack/internal/user"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInternalError         = errors.New("internal Server Error")
	ErrTwoFactorCodeRequired = errors.New("two factor code is required")
	ErrInvalid2FACode        = errors.New("2fa code is invalid")
)

type Service interface {
	Login(emailOrLogin, password, twoFactorCode string) (string, error)
	RegisterTwoFactor(userID string) (string, error)
	ConfirmTwoFactor(userID, code string) error
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo          UserRepository
	userService   user.Service
	jwtManager    JWTManagerInterface
	authenticator Authenticator
}

func NewAuthService(repo UserRepository, userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		repo:        repo,
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Login checks the credentials and, when the account has two-factor enabled,
// the TOTP code, then issues a bearer access token carrying the user id.
func (s *service) Login(emailOrLogin, password, twoFactorCode string) (string, error) {
	existingUser, err := s.userService.GetUserByLoginOrEmail(emailOrLogin)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if existingUser.TwoFactorEnabled {
		if twoFactorCode == "" {
			return "", ErrTwoFactorCodeRequired
		}
		secret, err := s.repo.GetTwoFactorSecret(existingUser.ID)
		if err != nil {
			return "", ErrInternalError
		}
		if !s.authenticator.VerifyCode(secret, twoFactorCode) {
			return "", ErrInvalid2FACode
		}
	}

	return s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
}

// RegisterTwoFactor stores a fresh TOTP secret for the user and returns the
// otpauth provisioning URI. The secret stays inactive until ConfirmTwoFactor
// sees one valid code.
func (s *service) RegisterTwoFactor(userID string) (string, error) {
	otpURI, secretKey, err := s.authenticator.GenerateSecret(userID)
	if err != nil {
		return "", err
	}
	if err := s.repo.SaveTwoFactorSecret(userID, secretKey); err != nil {
		return "", err
	}
	return otpURI, nil
}

func (s *service) ConfirmTwoFactor(userID, code string) error {
	secret, err := s.repo.GetTwoFactorSecret(userID)
	if err != nil {
		return err
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalid2FACode
	}
	return s.repo.EnableTwoFactor(userID)
}
