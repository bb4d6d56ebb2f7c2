package api

import (
	"context"
	"log"
	"time"

	"github.com/SundayYogurt/contacts_service/config"
	"github.com/SundayYogurt/contacts_service/infra/queue"
	"github.com/SundayYogurt/contacts_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/contacts_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/contacts_service/internal/cache"
	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/helper"
	"github.com/SundayYogurt/contacts_service/internal/repository"
	"github.com/SundayYogurt/contacts_service/internal/services"
	"github.com/SundayYogurt/contacts_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Contact{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Cache ----------
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("redis connection error: %v", err)
	}
	log.Println("redis connected")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.JWTSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userCache := cache.NewUserCache(rdb)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, userCache, authHelper, kafkaProducer)
	contactSvc := services.NewContactService(contactRepo)
	userSvc := services.NewUserService(userRepo, up)

	// ---------- Handlers ----------
	authmw := middleware.AuthMiddleware(authSvc)

	handlers.NewAuthHandler(authSvc).SetupRoutes(app, authmw)
	handlers.NewContactHandler(contactSvc).SetupRoutes(app, authmw)
	handlers.NewUserHandler(userSvc).SetupRoutes(app, authmw)

	// ---------- Health ----------
	app.Get("/api/healthchecker", func(c *fiber.Ctx) error {
		if err := db.Exec("SELECT 1").Error; err != nil {
			log.Printf("healthcheck db error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Error connecting to the database",
			})
		}
		return c.JSON(fiber.Map{"message": "Welcome to the Contacts API!"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
