package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/password"
)

// UserProcedure procedimiento almacenado de usuarios.
const UserProcedure = "usp_users"

// UserService CRUD de usuarios más la búsqueda por email del login.
type UserService struct {
	*crud.Service[entity.User, dto.UserRequest, dto.UserResponse]
	gw repository.Gateway[entity.User]
}

// UserRecord perfil de entrada: la contraseña nunca se guarda en claro.
func UserRecord(hasher *password.Hasher) *mapping.Profile[dto.UserRequest, entity.User] {
	return mapping.NewProfile(func(in *dto.UserRequest, u *entity.User) {
		u.Email = mapping.NormalizeEmail(u.Email)
		u.FirstName = mapping.NormalizeName(u.FirstName)
		u.LastName = mapping.NormalizeName(u.LastName)
		if in.Password != "" {
			u.PasswordHash = hasher.Digest(in.Password)
		}
	})
}

// Registration perfil del auto-registro: el avatar no se acepta del cliente.
var Registration = mapping.NewProfile(func(_ *dto.RegisterRequest, u *dto.UserRequest) {
	u.AvatarPath = ""
})

// NewUserService el email es la clave única; el avatar se guarda en avatars/.
func NewUserService(gw repository.Gateway[entity.User], assets repository.AssetStore, hasher *password.Hasher, log zerolog.Logger) *UserService {
	svc := crud.NewService(crud.Descriptor[entity.User, dto.UserRequest, dto.UserResponse]{
		Entity:    "usuario",
		Procedure: UserProcedure,
		IDParam:   "user_id",
		NotFound:  "usuario no encontrado",
		Duplicate: "ya existe un usuario con ese email",
		ToRecord:  UserRecord(hasher),
		ToModel:   mapping.NewProfile[entity.User, dto.UserResponse](),
		SetID:     func(u *entity.User, id uuid.UUID) { u.ID = id },
		Params: func(u *entity.User) repository.Params {
			var hash any // nil = UPDATE conserva la contraseña actual
			if u.PasswordHash != "" {
				hash = u.PasswordHash
			}
			return repository.Params{
				"role_id":       u.RoleID,
				"first_name":    u.FirstName,
				"last_name":     u.LastName,
				"email":         u.Email,
				"password_hash": hash,
				"avatar_path":   u.AvatarPath,
			}
		},
		// el email queda sin confirmar hasta que el usuario lo verifique
		InsertParams: func(*entity.User) repository.Params {
			return repository.Params{"email_confirmed": false}
		},
		DuplicateKeys: func(u *entity.User) repository.Params {
			return repository.Params{"email": u.Email}
		},
		Asset: &crud.Asset[entity.User]{
			Folder: AvatarFolder,
			Get:    func(u *entity.User) string { return u.AvatarPath },
			Set:    func(u *entity.User, path string) { u.AvatarPath = path },
		},
	}, gw, assets, log)

	return &UserService{Service: svc, gw: gw}
}

// Create la contraseña es obligatoria al crear (en Update es opcional).
func (s *UserService) Create(ctx context.Context, in dto.UserRequest) (*crud.Confirmation, error) {
	if in.Password == "" {
		return nil, domain.BadRequest("la contraseña es obligatoria")
	}
	return s.Service.Create(ctx, in)
}

// FindByEmail nil, nil si no existe; el llamador decide el error.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	params := repository.NewParams(repository.ActivityGetByEmail).With("email", mapping.NormalizeEmail(email))
	return s.gw.GetOne(ctx, UserProcedure, params)
}
