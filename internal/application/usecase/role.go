package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// RoleProcedure procedimiento almacenado de roles.
const RoleProcedure = "usp_roles"

// RoleService CRUD de roles.
type RoleService = crud.Service[entity.Role, dto.RoleRequest, dto.RoleResponse]

// NewRoleService los nombres se guardan en minúsculas: el middleware RBAC compara contra ellos.
func NewRoleService(gw repository.Gateway[entity.Role], log zerolog.Logger) *RoleService {
	return crud.NewService(crud.Descriptor[entity.Role, dto.RoleRequest, dto.RoleResponse]{
		Entity:    "rol",
		Procedure: RoleProcedure,
		IDParam:   "role_id",
		NotFound:  "rol no encontrado",
		Duplicate: "ya existe un rol con ese nombre",
		ToRecord: mapping.NewProfile(func(_ *dto.RoleRequest, r *entity.Role) {
			r.Name = strings.ToLower(mapping.NormalizeName(r.Name))
		}),
		ToModel: mapping.NewProfile[entity.Role, dto.RoleResponse](),
		SetID:   func(r *entity.Role, id uuid.UUID) { r.ID = id },
		Params: func(r *entity.Role) repository.Params {
			return repository.Params{"name": r.Name, "description": r.Description}
		},
		DuplicateKeys: func(r *entity.Role) repository.Params {
			return repository.Params{"name": r.Name}
		},
	}, gw, nil, log)
}
