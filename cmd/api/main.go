package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/almacen-api/docs"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
	infrapdf "github.com/jhoicas/almacen-api/internal/infrastructure/pdf"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	// Repositorios atados al pool (lecturas). Las escrituras con más de una
	// tabla involucrada pasan por el TxRunner.
	itemRepo := postgres.NewItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := stock.NewLedger()
	orderUC := orders.NewOrderUseCase(txRunner, ledger, orderRepo, itemRepo, statusRepo, clientRepo)

	// PDF: hoja de alistamiento de la orden
	sheetGenerator := infrapdf.NewMarotoSheetGenerator(cfg.App.Name)
	orderSheetUC := orders.NewOrderSheetUseCase(orderUC, sheetGenerator)

	itemUC := usecase.NewItemUseCase(itemRepo, statusRepo, supplierRepo, categoryRepo, warehouseRepo, txRunner)
	statusUC := usecase.NewStatusUseCase(statusRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, statusRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, txRunner)
	clientUC := usecase.NewClientUseCase(clientRepo, txRunner)
	roleUC := usecase.NewRoleUseCase(roleRepo, permissionRepo, txRunner)
	permissionUC := usecase.NewPermissionUseCase(permissionRepo, txRunner)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, statusRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ItemUC:       itemUC,
		OrderUC:      orderUC,
		OrderSheetUC: orderSheetUC,
		StatusUC:     statusUC,
		CategoryUC:   categoryUC,
		WarehouseUC:  warehouseUC,
		SupplierUC:   supplierUC,
		ClientUC:     clientUC,
		RoleUC:       roleUC,
		PermissionUC: permissionUC,
		JWTSecret:    cfg.JWT.Secret,
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
