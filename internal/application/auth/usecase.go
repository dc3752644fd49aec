package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/pkg/jwt"
	"github.com/jhoicas/ecommerce-admin-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users       *usecase.UserService
	hasher      *password.Hasher
	jwtCfg      JWTConfig
	defaultRole uuid.UUID // uuid.Nil = auto-registro deshabilitado
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users *usecase.UserService, hasher *password.Hasher, jwtCfg JWTConfig, defaultRole uuid.UUID) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, jwtCfg: jwtCfg, defaultRole: defaultRole}
}

// Register crea un cliente con el rol por defecto. El email duplicado se reporta como BadRequest.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*crud.Confirmation, error) {
	if uc.defaultRole == uuid.Nil {
		return nil, domain.Forbidden("el registro de usuarios está deshabilitado")
	}
	req := usecase.Registration.Map(in)
	req.RoleID = uc.defaultRole
	return uc.users.Create(ctx, req)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y contraseña incorrecta dan el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.Unauthorized("credenciales inválidas")
	}
	if !user.IsActive {
		return nil, domain.Forbidden("usuario inactivo")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID.String(), user.Email, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.Internal(err, "no se pudo generar el token")
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      *uc.users.Model(user),
	}, nil
}
