package auth

import (
	"fmt"
	"strings"

	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credential is the single admin identity, resolved from configuration
// at startup and never mutated afterwards. PasswordHash is a bcrypt
// hash; if empty, Password is hashed once during construction.
type Credential struct {
	Email        string
	Name         string
	Password     string
	PasswordHash string
}

// UseCase verifies the admin credential and issues session tokens.
type UseCase struct {
	email        string
	name         string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewUseCase resolves the credential. Returns an error when no usable
// email/password pair is configured, so a misconfigured deployment
// fails at startup rather than at the first login.
func NewUseCase(cred Credential, jwtCfg JWTConfig) (*UseCase, error) {
	if cred.Email == "" {
		return nil, fmt.Errorf("auth: admin email not configured")
	}
	hash := cred.PasswordHash
	if hash == "" {
		if cred.Password == "" {
			return nil, fmt.Errorf("auth: admin password not configured")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash admin password: %w", err)
		}
		hash = string(h)
	}
	name := cred.Name
	if name == "" {
		name = "Admin"
	}
	return &UseCase{
		email:        strings.TrimSpace(cred.Email),
		name:         name,
		passwordHash: []byte(hash),
		jwtCfg:       jwtCfg,
	}, nil
}

// Login checks the submitted email/password pair against the admin
// credential and returns a signed session token. Wrong email and wrong
// password are indistinguishable to the caller.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !strings.EqualFold(strings.TrimSpace(in.Email), uc.email) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Email: uc.email, Name: uc.name}, nil
}
