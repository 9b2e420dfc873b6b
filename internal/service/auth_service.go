package service

import (
	"context"
	"errors"
	"time"

	"github.com/romanvsc/registro-produccion/internal/config"
	"github.com/romanvsc/registro-produccion/internal/dto"
	"github.com/romanvsc/registro-produccion/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrCredenciales is returned for any login failure. Whether the dni or the
// password was wrong is deliberately not revealed.
var ErrCredenciales = errors.New("DNI o contraseña incorrectos")

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.PersonalRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.PersonalRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByDNI(ctx, req.DNI)
	if err != nil {
		return nil, ErrCredenciales
	}

	// personal.password holds a bcrypt hash. Legacy plaintext rows must be
	// migrated with cmd/genhash before they can log in.
	if user.Password == nil {
		return nil, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	token, err := s.generateToken(user.IDPersonal, req.DNI)
	if err != nil {
		return nil, err
	}

	dni := ""
	if user.DNI != nil {
		dni = *user.DNI
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserInfo{
			IDPersonal:      user.IDPersonal,
			Nombre:          user.Nombre,
			DNI:             dni,
			Encargado:       user.Encargado,
			TipoDeProcesoID: user.TipoDeProcesoID,
		},
	}, nil
}

func (s *authService) generateToken(idPersonal int, dni string) (string, error) {
	claims := jwt.MapClaims{
		"sub": idPersonal,
		"dni": dni,
		"exp": time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
