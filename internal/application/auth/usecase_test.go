package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devstudio/agencia-api/internal/application/auth"
	"github.com/devstudio/agencia-api/internal/application/dto"
	"github.com/devstudio/agencia-api/internal/domain"
	"github.com/devstudio/agencia-api/internal/domain/entity"
)

// fakeUserRepo almacén de credenciales en memoria para los tests.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthUC(users ...*entity.User) (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 7 * 24 * 60,
		Issuer:     "agencia-api-test",
	})
	return uc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUC(&entity.User{
		ID: "u1", Username: "ana", Password: hashed(t, "secreta"),
		FullName: "Ana Vendedora", Role: entity.RoleVendedor,
	})

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, "ana", out.User.Username)
	assert.Equal(t, entity.RoleVendedor, out.User.Role)
	// La expiración es del servidor: ~7 días desde ahora
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), out.ExpiresAt, time.Minute)
}

func TestLogin_FilaSemillaEnClaro(t *testing.T) {
	// Filas heredadas del almacén original guardan la contraseña en claro
	uc, _ := newAuthUC(&entity.User{
		ID: "u1", Username: "ana", Password: "secreta", Role: entity.RoleVendedor,
	})

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(&entity.User{
		ID: "u1", Username: "ana", Password: hashed(t, "secreta"), Role: entity.RoleVendedor,
	})

	_, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y password incorrecta deben ser indistinguibles")
}

func TestRestoreSession_DevuelveRegistroVivo(t *testing.T) {
	user := &entity.User{
		ID: "u1", Username: "ana", Password: hashed(t, "secreta"), Role: entity.RoleVendedor,
	}
	uc, repo := newAuthUC(user)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)

	// Un ascenso posterior al login surte efecto en la siguiente restauración
	repo.users["u1"].Role = entity.RoleDirector

	restored, err := uc.RestoreSession(out.Token)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, entity.RoleDirector, restored.Role)
}

func TestRestoreSession_UsuarioEliminado_SinSesion(t *testing.T) {
	user := &entity.User{
		ID: "u1", Username: "ana", Password: hashed(t, "secreta"), Role: entity.RoleVendedor,
	}
	uc, repo := newAuthUC(user)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)

	delete(repo.users, "u1")

	restored, err := uc.RestoreSession(out.Token)
	require.NoError(t, err, "usuario ausente no es un error: cae al login")
	assert.Nil(t, restored)
}

func TestRestoreSession_TokenInvalido_SinSesion(t *testing.T) {
	uc, _ := newAuthUC()

	restored, err := uc.RestoreSession("token.basura.aqui")
	require.NoError(t, err)
	assert.Nil(t, restored)
}
