package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"critgo/backend/internal/api/handler"
	"critgo/backend/internal/articulo"
	"critgo/backend/internal/auth"
	"critgo/backend/internal/config"
	"critgo/backend/internal/hub"
	"critgo/backend/internal/models"
	"critgo/backend/internal/notify"
	"critgo/backend/internal/queja"
	"critgo/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey, which the storage layer relies on.
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Queja{},
		&models.Articulo{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

// seedAdmin creates the initial admin account when none exists yet.
func seedAdmin(s *storage.Service, cfg *config.Config) {
	if cfg.SeedAdminPassword == "" {
		return
	}

	exists, err := s.HasAdministrador()
	if err != nil {
		log.Printf("ERROR: Failed to check for existing admin: %v", err)
		return
	}
	if exists {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("ERROR: Failed to hash seed admin password: %v", err)
		return
	}

	admin := &models.Usuario{
		UserName:     cfg.SeedAdminUser,
		Correo:       cfg.SeedAdminEmail,
		PasswordHash: string(hash),
		Rol:          models.RolAdministrador,
	}
	if err := s.CreateUsuario(admin); err != nil {
		log.Printf("ERROR: Failed to seed admin account: %v", err)
		return
	}
	log.Printf("INFO: Seed admin account %q created.", admin.UserName)
}

func main() {
	log.Println("Starting Crit Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewService(db, rdb)
	seedAdmin(s, cfg)

	// Realtime hub: owns the admin session group, fed by Redis pub/sub.
	notificationHub := hub.NewManager(s)
	go notificationHub.Run()

	// Notification fan-out: broadcast + email, telegram when configured.
	var mailer notify.Mailer
	if cfg.SMTPHost != "" {
		mailer = &notify.SMTPMailer{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUser,
			Password:  cfg.SMTPPass,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}
	} else {
		log.Println("Warning: SMTP not configured, email notifications disabled")
	}

	var telegram notify.TelegramNotifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("ERROR: Failed to start Telegram sink: %v", err)
		} else {
			telegram = tg
		}
	}

	notifier := notify.NewService(s, mailer, telegram, cfg.AdminEmail)

	quejaService := queja.NewService(s, notifier)
	articuloService := articulo.NewService(s)

	tokens := auth.NewTokenService(cfg.JWTSecret)
	middleware := auth.NewMiddleware(tokens, s)

	r := gin.Default()
	h := handler.NewHandler(quejaService, articuloService, s, tokens, notificationHub)
	h.RegisterRoutes(r, middleware)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
