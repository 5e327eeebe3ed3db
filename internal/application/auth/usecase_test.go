package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	copy := *u
	r.byEmail[u.Email] = &copy
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	copy := *u
	r.byEmail[u.Email] = &copy
	return nil
}

type fakeRoleRepo struct {
	store map[string]*entity.Role
}

func (r *fakeRoleRepo) Create(role *entity.Role) error { return nil }
func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.store[id], nil
}
func (r *fakeRoleRepo) GetByName(string) (*entity.Role, error)          { return nil, nil }
func (r *fakeRoleRepo) List(int, int) ([]*entity.Role, error)           { return nil, nil }
func (r *fakeRoleRepo) Delete(string) error                             { return nil }
func (r *fakeRoleRepo) ListPermissions(string) ([]*entity.Permission, error) { return nil, nil }
func (r *fakeRoleRepo) GrantExists(string, string) (bool, error)        { return false, nil }
func (r *fakeRoleRepo) Grant(string, string) error                      { return nil }
func (r *fakeRoleRepo) Revoke(string, string) error                     { return nil }
func (r *fakeRoleRepo) ClearPermissions(string) error                   { return nil }

type fakeStatusRepo struct {
	store map[string]*entity.Status
}

func (r *fakeStatusRepo) Create(*entity.Status) error { return nil }
func (r *fakeStatusRepo) GetByID(id string) (*entity.Status, error) {
	return r.store[id], nil
}
func (r *fakeStatusRepo) GetByCategoryAndLabel(string, string) (*entity.Status, error) {
	return nil, nil
}
func (r *fakeStatusRepo) ListByCategory(string, int, int) ([]*entity.Status, error) {
	return nil, nil
}
func (r *fakeStatusRepo) Update(*entity.Status) error { return nil }
func (r *fakeStatusRepo) Delete(string) error         { return nil }

func newAuthEnv() (*auth.AuthUseCase, *fakeUserRepo) {
	users := &fakeUserRepo{byEmail: make(map[string]*entity.User)}
	roles := &fakeRoleRepo{store: map[string]*entity.Role{
		"rol-admin": {ID: "rol-admin", Name: "admin", CreatedAt: time.Now()},
	}}
	statuses := &fakeStatusRepo{store: map[string]*entity.Status{
		"st-user-activo": {ID: "st-user-activo", Category: entity.StatusCategoryUser, Label: entity.UserStatusActive},
		"st-user-suspendido": {ID: "st-user-suspendido", Category: entity.StatusCategoryUser, Label: "suspendido"},
		"st-order-pendiente": {ID: "st-order-pendiente", Category: entity.StatusCategoryOrder, Label: "pendiente"},
	}}
	cfg := auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "almacen-api-test"}
	return auth.NewAuthUseCase(users, roles, statuses, cfg), users
}

func register(t *testing.T, uc *auth.AuthUseCase, email, statusID string) *dto.UserResponse {
	t.Helper()
	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    email,
		Password: "contraseña-larga",
		Name:     "Ana",
		RoleID:   "rol-admin",
		StatusID: statusID,
	})
	require.NoError(t, err)
	return user
}

func TestRegister_YLoginEmitenTokenConRol(t *testing.T) {
	uc, _ := newAuthEnv()
	register(t, uc, "ana@taller.co", "st-user-activo")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@taller.co", Password: "contraseña-larga"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@taller.co", out.User.Email)

	userID, role, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthEnv()
	register(t, uc, "ana@taller.co", "st-user-activo")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@taller.co",
		Password: "otra-contraseña",
		RoleID:   "rol-admin",
		StatusID: "st-user-activo",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := newAuthEnv()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@taller.co",
		Password: "contraseña-larga",
		RoleID:   "rol-fantasma",
		StatusID: "st-user-activo",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EstadoDeOtraCategoria(t *testing.T) {
	uc, _ := newAuthEnv()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@taller.co",
		Password: "contraseña-larga",
		RoleID:   "rol-admin",
		StatusID: "st-order-pendiente",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_NuncaExponeElHash(t *testing.T) {
	uc, users := newAuthEnv()
	register(t, uc, "ana@taller.co", "st-user-activo")

	stored, err := users.FindByEmail("ana@taller.co")
	require.NoError(t, err)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthEnv()
	register(t, uc, "ana@taller.co", "st-user-activo")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@taller.co", Password: "incorrecta"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioSuspendido(t *testing.T) {
	uc, _ := newAuthEnv()
	register(t, uc, "luis@taller.co", "st-user-suspendido")

	_, err := uc.Login(dto.LoginRequest{Email: "luis@taller.co", Password: "contraseña-larga"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
