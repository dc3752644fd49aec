// seed_catalog carga marcas, categorías, proveedores o roles desde un CSV usando los
// mismos servicios que la API (validación, normalización y chequeo de duplicados).
//
// Uso: go run ./cmd/seed_catalog -kind brands [-encoding iso-8859-1] marcas.csv
// Cabeceras: name,description (brands, categories, roles);
// name,tax_id,contact_name,email,phone,address (suppliers).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// summary resultado de la carga.
type summary struct {
	created, skipped, failed int
}

func main() {
	kind := flag.String("kind", "brands", "brands | categories | suppliers | roles")
	encoding := flag.String("encoding", "utf-8", "utf-8 | iso-8859-1 | windows-1252")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_catalog -kind brands|categories|suppliers|roles [-encoding iso-8859-1] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()
	in, err := decoder(*encoding, f)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	gateway := postgres.NewGateway(pool, log.Component("gateway"), nil)
	store, err := storage.NewOSFileStore(cfg.Storage.RootDir, cfg.Storage.MaxUploadBytes())
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	val := httpRouter.NewValidator()
	svcLog := log.Component("seed")

	var res summary
	switch *kind {
	case "brands":
		rows, err := readRecords(in, "name")
		if err != nil {
			log.Fatal().Err(err).Msg("leer CSV")
		}
		svc := usecase.NewBrandService(postgres.NewProcedures[entity.Brand](gateway), store, svcLog)
		res = seed(ctx, svcLog, val, rows, svc.Create, func(r record) dto.BrandRequest {
			return dto.BrandRequest{Name: r.get("name"), Description: r.get("description")}
		})
	case "categories":
		rows, err := readRecords(in, "name")
		if err != nil {
			log.Fatal().Err(err).Msg("leer CSV")
		}
		svc := usecase.NewCategoryService(postgres.NewProcedures[entity.Category](gateway), store, svcLog)
		res = seed(ctx, svcLog, val, rows, svc.Create, func(r record) dto.CategoryRequest {
			return dto.CategoryRequest{Name: r.get("name"), Description: r.get("description")}
		})
	case "suppliers":
		rows, err := readRecords(in, "name", "tax_id")
		if err != nil {
			log.Fatal().Err(err).Msg("leer CSV")
		}
		svc := usecase.NewSupplierService(postgres.NewProcedures[entity.Supplier](gateway), svcLog)
		res = seed(ctx, svcLog, val, rows, svc.Create, supplierFromRecord)
	case "roles":
		rows, err := readRecords(in, "name")
		if err != nil {
			log.Fatal().Err(err).Msg("leer CSV")
		}
		svc := usecase.NewRoleService(postgres.NewProcedures[entity.Role](gateway), svcLog)
		res = seed(ctx, svcLog, val, rows, svc.Create, func(r record) dto.RoleRequest {
			return dto.RoleRequest{Name: r.get("name"), Description: r.get("description")}
		})
	default:
		log.Fatal().Str("kind", *kind).Msg("tipo de catálogo desconocido")
	}

	fmt.Printf("%s: %d creados, %d omitidos, %d con error\n", *kind, res.created, res.skipped, res.failed)
	if res.failed > 0 {
		os.Exit(1)
	}
}

func supplierFromRecord(r record) dto.SupplierRequest {
	return dto.SupplierRequest{
		Name:        r.get("name"),
		TaxID:       r.get("tax_id"),
		ContactName: r.get("contact_name"),
		Email:       r.get("email"),
		Phone:       r.get("phone"),
		Address:     r.get("address"),
	}
}

// seed crea cada fila; las inválidas y duplicadas (BadRequest) se omiten, el resto cuenta como error.
func seed[W any](
	ctx context.Context,
	log zerolog.Logger,
	val *httpRouter.Validator,
	rows []record,
	create func(context.Context, W) (*crud.Confirmation, error),
	build func(record) W,
) summary {
	var res summary
	for i, row := range rows {
		line := i + 2 // la cabecera es la línea 1
		in := build(row)
		if err := val.Struct(in); err != nil {
			log.Warn().Int("line", line).Msg(err.Error())
			res.skipped++
			continue
		}
		conf, err := create(ctx, in)
		switch {
		case err == nil:
			log.Info().Int("line", line).Str("id", conf.ID.String()).Msg("creado")
			res.created++
		case domain.KindOf(err) == domain.KindBadRequest:
			log.Warn().Int("line", line).Msg(err.Error())
			res.skipped++
		default:
			log.Error().Err(err).Int("line", line).Msg("no se pudo crear")
			res.failed++
		}
	}
	return res
}
