package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
	"github.com/jhoicas/ecommerce-admin-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	registry := metrics.NewRegistry()
	recorder := metrics.New(registry)
	gateway := postgres.NewGateway(pool, log.Component("gateway"), recorder)

	store, err := storage.NewOSFileStore(cfg.Storage.RootDir, cfg.Storage.MaxUploadBytes())
	if err != nil {
		log.Fatal().Err(err).Str("root", cfg.Storage.RootDir).Msg("almacenamiento de archivos")
	}
	hasher, err := password.NewHasher(cfg.Auth.PasswordPepper)
	if err != nil {
		log.Fatal().Err(err).Msg("hasher de contraseñas")
	}
	defaultRole := uuid.Nil
	if cfg.Auth.DefaultRoleID != "" {
		if defaultRole, err = uuid.Parse(cfg.Auth.DefaultRoleID); err != nil {
			log.Fatal().Err(err).Msg("AUTH_DEFAULT_ROLE_ID no es un UUID")
		}
	}

	svcLog := log.Component("service")
	brands := usecase.NewBrandService(postgres.NewProcedures[entity.Brand](gateway), store, svcLog)
	categories := usecase.NewCategoryService(postgres.NewProcedures[entity.Category](gateway), store, svcLog)
	suppliers := usecase.NewSupplierService(postgres.NewProcedures[entity.Supplier](gateway), svcLog)
	products := usecase.NewProductService(
		postgres.NewProcedures[entity.Product](gateway),
		postgres.NewProcedures[entity.ProductDetail](gateway),
		store, svcLog,
	)
	purchaseOrders := usecase.NewPurchaseOrderService(
		postgres.NewProcedures[entity.PurchaseOrder](gateway),
		postgres.NewProcedures[entity.PurchaseOrderDetail](gateway),
		infrapdf.NewPurchaseOrderPDF(cfg.App.Name),
		svcLog,
	)
	roles := usecase.NewRoleService(postgres.NewProcedures[entity.Role](gateway), svcLog)
	users := usecase.NewUserService(postgres.NewProcedures[entity.User](gateway), store, hasher, svcLog)

	authUC := auth.NewAuthUseCase(users, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, defaultRole)

	httpLog := log.Component("http")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ErrorHandler: httpRouter.ErrorHandler(httpLog, recorder),
	})
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(httpLog))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    cfg.App.Name + " API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Logos, imágenes y avatares ya reubicados; tmp/ no se expone
	app.Use(cfg.Storage.PublicURL, filesystem.New(filesystem.Config{
		Root:   afero.NewHttpFs(store.PublicFs(usecase.AssetFolders...)),
		Browse: false,
	}))

	app.Use("/api", httpRouter.RequestTimeout(cfg.HTTP.RequestTimeout))
	httpRouter.Router(app, httpRouter.RouterDeps{
		Brands:         brands,
		Categories:     categories,
		Suppliers:      suppliers,
		Products:       products,
		PurchaseOrders: purchaseOrders,
		Roles:          roles,
		Users:          users,
		AuthUC:         authUC,
		Uploads:        store,
		Validator:      httpRouter.NewValidator(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
