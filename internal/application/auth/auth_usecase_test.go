package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/application/auth"
	"github.com/jhoicas/Comercial-api/internal/application/dto"
	"github.com/jhoicas/Comercial-api/internal/domain"
	"github.com/jhoicas/Comercial-api/internal/domain/entity"
	"github.com/jhoicas/Comercial-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.users[email], nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "comercial-pro-test"}
	return auth.NewAuthUseCase(repo, cfg), repo
}

func TestRegisterUser_HasheaPassword(t *testing.T) {
	uc, repo := newAuthFixture()

	resp, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@negocio.com", Password: "secreta123", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@negocio.com", resp.Email)
	assert.Equal(t, "active", resp.Status)

	stored := repo.users["ana@negocio.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@negocio.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@negocio.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenValido(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@negocio.com", Password: "secreta123"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@negocio.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repo := newAuthFixture()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@negocio.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@negocio.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@negocio.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users["ana@negocio.com"].Status = "disabled"
	_, err = uc.Login(dto.LoginRequest{Email: "ana@negocio.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
