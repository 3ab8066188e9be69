package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
	"github.com/devstudio/agencia-api/internal/domain/repository"
	"github.com/devstudio/agencia-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // ventana de validez; el portal usa 7 días (10080)
	Issuer     string
}

// AuthUseCase resuelve sesiones: login contra el almacén de credenciales y
// restauración desde un token emitido previamente. No hay registro de usuarios:
// agencia_usuarios se alimenta fuera de banda.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite un token de sesión firmado con
// expiración de servidor. Cualquier fallo (usuario inexistente o credencial
// incorrecta) resuelve a ErrUnauthorized sin dejar estado parcial.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !credentialMatches(user.Password, in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *ToUserResponse(user),
	}, nil
}

// RestoreSession valida el token y vuelve a leer la fila del usuario, de modo
// que un cambio de rol o de nombre surte efecto en la siguiente restauración.
// Un token inválido/expirado o un usuario que ya no existe resuelven a
// (nil, nil): sin sesión, el caller vuelve al login. No es un error.
func (uc *AuthUseCase) RestoreSession(token string) (*entity.User, error) {
	userID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, nil
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CurrentUser devuelve el registro vivo del usuario de la sesión.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// credentialMatches compara la credencial almacenada con la recibida.
// Las filas nuevas llevan hash bcrypt; las filas semilla heredadas del almacén
// original guardan la contraseña en claro y se comparan en tiempo constante.
func credentialMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// ToUserResponse mapea la entidad a su DTO de salida (sin credencial).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
