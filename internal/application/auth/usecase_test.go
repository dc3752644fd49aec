package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/jwt"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
	"github.com/jhoicas/ecommerce-admin-api/pkg/password"
)

// usersStub usp_users con un único usuario (o ninguno).
type usersStub struct {
	user    *entity.User
	inserts []repository.Params
}

func (s *usersStub) Execute(_ context.Context, _ string, p repository.Params) (bool, error) {
	s.inserts = append(s.inserts, p)
	return true, nil
}

func (s *usersStub) GetOne(_ context.Context, _ string, p repository.Params) (*entity.User, error) {
	if s.user == nil {
		return nil, nil
	}
	switch p.Activity() {
	case repository.ActivityGetByEmail, repository.ActivityCheckDuplicate:
		if p["email"] == s.user.Email {
			return s.user, nil
		}
	}
	return nil, nil
}

func (s *usersStub) GetPage(context.Context, string, pagination.Window, repository.Params) (*pagination.Page[entity.User], error) {
	return pagination.New[entity.User](nil, pagination.Window{}, 0), nil
}

type noAssets struct{}

func (noAssets) CheckTemp(context.Context, string) error                  { return nil }
func (noAssets) Relocate(context.Context, string, string) (string, error) { return "", nil }
func (noAssets) Delete(context.Context, string) error                     { return nil }

const secret = "jwt-secret"

func setup(t *testing.T, user *entity.User, defaultRole uuid.UUID) (*auth.AuthUseCase, *usersStub, *password.Hasher) {
	t.Helper()
	h, err := password.NewHasher("pepper")
	require.NoError(t, err)
	stub := &usersStub{user: user}
	users := usecase.NewUserService(stub, noAssets{}, h, zerolog.Nop())
	uc := auth.NewAuthUseCase(users, h, auth.JWTConfig{Secret: secret, ExpMinutes: 30, Issuer: "test"}, defaultRole)
	return uc, stub, h
}

func activeUser(h *password.Hasher) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "ana@shop.test",
		PasswordHash: h.Digest("secret123"),
		RoleName:     entity.RoleAdmin,
		IsActive:     true,
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	h, _ := password.NewHasher("pepper")
	user := activeUser(h)
	uc, _, _ := setup(t, user, uuid.Nil)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@shop.test", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, 1800, out.ExpiresIn)
	assert.Equal(t, user.ID, out.User.ID)
	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestLogin_PasswordIncorrectoOEmailInexistente(t *testing.T) {
	h, _ := password.NewHasher("pepper")
	uc, _, _ := setup(t, activeUser(h), uuid.Nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@shop.test", Password: "otra"})
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))

	_, err2 := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@shop.test", Password: "secret123"})
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err2))
	assert.Equal(t, err.Error(), err2.Error(), "no se revela si el email existe")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	h, _ := password.NewHasher("pepper")
	user := activeUser(h)
	user.IsActive = false
	uc, _, _ := setup(t, user, uuid.Nil)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: "secret123"})

	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestRegister_AsignaRolPorDefectoYDigest(t *testing.T) {
	role := uuid.New()
	uc, stub, h := setup(t, nil, role)

	conf, err := uc.Register(context.Background(), dto.RegisterRequest{FirstName: "Ana", Email: "ana@shop.test", Password: "secret"})

	require.NoError(t, err)
	require.Len(t, stub.inserts, 1)
	insert := stub.inserts[0]
	assert.Equal(t, conf.ID, insert["user_id"])
	assert.Equal(t, role, insert["role_id"])
	assert.Equal(t, h.Digest("secret"), insert["password_hash"])
	assert.Equal(t, false, insert["email_confirmed"])
	assert.Equal(t, "", insert["avatar_path"])
}

func TestRegister_EmailDuplicado(t *testing.T) {
	h, _ := password.NewHasher("pepper")
	uc, stub, _ := setup(t, activeUser(h), uuid.New())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{FirstName: "Ana", Email: "ana@shop.test", Password: "secret123"})

	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
	assert.Empty(t, stub.inserts)
}

func TestRegister_Deshabilitado(t *testing.T) {
	uc, _, _ := setup(t, nil, uuid.Nil)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.c", Password: "secret123"})

	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}
