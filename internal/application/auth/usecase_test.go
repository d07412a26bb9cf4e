package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/distrifarma/internal/application/dto"
	"github.com/tu-usuario/distrifarma/internal/domain"
	"github.com/tu-usuario/distrifarma/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		copia := *u
		r.users[u.ID] = &copia
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	copia := *user
	r.users[user.ID] = &copia
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		copia := *u
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copia := *user
	r.users[user.ID] = &copia
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func hashDe(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func managerDePrueba(t *testing.T) *entity.User {
	return &entity.User{
		ID:                 "user-1",
		Email:              "manager@pharma.com",
		PasswordHash:       hashDe(t, "password123"),
		Name:               "Gerente Hospital",
		Role:               entity.RoleHospitalManager,
		HospitalID:         "hospital-1",
		MustChangePassword: true,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	repo := newFakeUserRepo(managerDePrueba(t))
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "manager@pharma.com", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "hospital-1", resp.User.HospitalID)
	// El portal usa este flag para forzar el cambio de password inicial.
	assert.True(t, resp.User.MustChangePassword)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo(managerDePrueba(t))
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	casos := []struct {
		nombre string
		in     dto.LoginRequest
	}{
		{"usuario inexistente", dto.LoginRequest{Email: "nadie@pharma.com", Password: "password123"}},
		{"password incorrecta", dto.LoginRequest{Email: "manager@pharma.com", Password: "otra-cosa"}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Login(context.Background(), c.in)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestChangePassword_LimpiaFlagYReemplazaHash(t *testing.T) {
	user := managerDePrueba(t)
	hashAnterior := user.PasswordHash
	repo := newFakeUserRepo(user)
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	err := uc.ChangePassword(context.Background(), "user-1", dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "clave-nueva-segura",
	})

	require.NoError(t, err)
	guardado := repo.users["user-1"]
	assert.False(t, guardado.MustChangePassword)
	assert.NotEqual(t, hashAnterior, guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave-nueva-segura")))
	// El cambio de password no toca la asignación de hospital.
	assert.Equal(t, "hospital-1", guardado.HospitalID)

	// La nueva password ya sirve para iniciar sesión.
	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "manager@pharma.com", Password: "clave-nueva-segura"})
	require.NoError(t, err)
	assert.False(t, resp.User.MustChangePassword)
}

func TestChangePassword_PasswordActualIncorrecta(t *testing.T) {
	repo := newFakeUserRepo(managerDePrueba(t))
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	err := uc.ChangePassword(context.Background(), "user-1", dto.ChangePasswordRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "clave-nueva-segura",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.True(t, repo.users["user-1"].MustChangePassword, "el flag no debe cambiar si falla la verificación")
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	err := uc.ChangePassword(context.Background(), "user-fantasma", dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "clave-nueva-segura",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_EntradaInvalida(t *testing.T) {
	repo := newFakeUserRepo(managerDePrueba(t))
	uc := NewUseCase(repo, JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "distrifarma"})

	casos := []struct {
		nombre string
		in     dto.ChangePasswordRequest
	}{
		{"password actual vacía", dto.ChangePasswordRequest{CurrentPassword: "", NewPassword: "clave-nueva-segura"}},
		{"nueva password corta", dto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "corta"}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := uc.ChangePassword(context.Background(), "user-1", c.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
