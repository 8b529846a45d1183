package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"summerschool_backend/internals/configs"
	database "summerschool_backend/internals/databases"
	cartModel "summerschool_backend/internals/features/carts/model"
	cartRepo "summerschool_backend/internals/features/carts/repository"
	"summerschool_backend/internals/features/carts/scheduler"
	checkoutService "summerschool_backend/internals/features/checkout/service"
	classModel "summerschool_backend/internals/features/classes/model"
	enrollModel "summerschool_backend/internals/features/enrollments/model"
	userModel "summerschool_backend/internals/features/users/user/model"
	helper "summerschool_backend/internals/helpers"
	helperOSS "summerschool_backend/internals/helpers/oss"
	"summerschool_backend/internals/metrics"
	middlewares "summerschool_backend/internals/middlewares"
	routes "summerschool_backend/internals/route"
	"summerschool_backend/internals/seeds"
)

func main() {
	cfg := configs.MustLoad()

	fiberCfg := fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             int(helperOSS.MaxUploadSize) + 1<<20,
		DisableStartupMessage: true,
	}
	middlewares.ApplyProxyConfig(&fiberCfg, cfg.TrustedProxies)
	app := fiber.New(fiberCfg)

	middlewares.SetupMiddlewares(app, cfg)
	metrics.Register()

	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("[ERROR] database: %v", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db,
			&userModel.UserModel{},
			&classModel.ClassModel{},
			&cartModel.CartItemModel{},
			&enrollModel.EnrollmentModel{},
		); err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
	}

	if cfg.SeedDir != "" {
		if err := seeds.RunAllSeeds(db, cfg.SeedDir); err != nil {
			log.Fatalf("[ERROR] seeds: %v", err)
		}
	}

	deps := routes.Deps{DB: db, Config: cfg}

	if cfg.OSS.Enabled() {
		store, err := helperOSS.NewOSSService(cfg.OSS)
		if err != nil {
			log.Fatalf("[ERROR] oss: %v", err)
		}
		deps.Images = store
	} else {
		log.Println("[WARN] ALI_OSS_* not set, class image upload disabled")
	}

	if gw := checkoutService.NewMidtransGateway(cfg.Midtrans); gw != nil {
		deps.Payments = gw
	} else {
		log.Println("[WARN] MIDTRANS_SERVER_KEY not set, payment intents disabled")
	}

	sweeper, err := scheduler.StartCartCleanupCron(cartRepo.NewCartRepository(db), cfg.CartItemTTL, cfg.CartSweepCron)
	if err != nil {
		log.Fatalf("[ERROR] cart sweeper: %v", err)
	}

	routes.SetupRoutes(app, deps)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] Summer School listening on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down")

	if sweeper != nil {
		<-sweeper.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	database.Close(db)
}
