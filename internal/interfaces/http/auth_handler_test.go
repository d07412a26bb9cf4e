package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/distrifarma/internal/application/auth"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
)

// userRepoStub repositorio mínimo con un solo usuario.
type userRepoStub struct {
	user *entity.User
}

func (r *userRepoStub) Create(_ context.Context, _ *entity.User) error { return nil }

func (r *userRepoStub) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		copia := *r.user
		return &copia, nil
	}
	return nil, nil
}

func (r *userRepoStub) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		copia := *r.user
		return &copia, nil
	}
	return nil, nil
}

func (r *userRepoStub) List(_ context.Context, _, _ int) ([]*entity.User, error) { return nil, nil }

func (r *userRepoStub) Update(_ context.Context, user *entity.User) error {
	if r.user == nil || r.user.ID != user.ID {
		return domain.ErrUserNotFound
	}
	copia := *user
	r.user = &copia
	return nil
}

func (r *userRepoStub) Delete(_ context.Context, _ string) error { return nil }

func newChangePasswordApp(t *testing.T, repo *userRepoStub) *fiber.App {
	t.Helper()
	uc := auth.NewUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 15, Issuer: "distrifarma"})
	handler := NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/api/auth/change-password", AuthMiddleware(testSecret), handler.ChangePassword)
	return app
}

func TestChangePasswordHandler_SinToken(t *testing.T) {
	app := newChangePasswordApp(t, &userRepoStub{})

	req := httptest.NewRequest("POST", "/api/auth/change-password",
		strings.NewReader(`{"current_password":"password123","new_password":"clave-nueva-segura"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordHandler_Exitoso(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoStub{user: &entity.User{
		ID:                 "user-1",
		Email:              "manager@pharma.com",
		PasswordHash:       string(hash),
		Role:               entity.RoleHospitalManager,
		HospitalID:         "hospital-1",
		MustChangePassword: true,
	}}
	app := newChangePasswordApp(t, repo)

	req := httptest.NewRequest("POST", "/api/auth/change-password",
		strings.NewReader(`{"current_password":"password123","new_password":"clave-nueva-segura"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "user-1", "hospital-1", entity.RoleHospitalManager))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, repo.user.MustChangePassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.user.PasswordHash), []byte("clave-nueva-segura")))
}

func TestChangePasswordHandler_PasswordActualIncorrecta(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoStub{user: &entity.User{
		ID:                 "user-1",
		Email:              "manager@pharma.com",
		PasswordHash:       string(hash),
		Role:               entity.RoleHospitalManager,
		MustChangePassword: true,
	}}
	app := newChangePasswordApp(t, repo)

	req := httptest.NewRequest("POST", "/api/auth/change-password",
		strings.NewReader(`{"current_password":"equivocada","new_password":"clave-nueva-segura"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "user-1", "", entity.RoleHospitalManager))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.True(t, repo.user.MustChangePassword)
}
