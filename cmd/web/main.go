package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rajivgeraev/rewear-web/internal/config"
	"github.com/rajivgeraev/rewear-web/internal/notifications"
	"github.com/rajivgeraev/rewear-web/internal/rewear"
	"github.com/rajivgeraev/rewear-web/internal/services/admin"
	"github.com/rajivgeraev/rewear-web/internal/services/auth"
	"github.com/rajivgeraev/rewear-web/internal/services/items"
	"github.com/rajivgeraev/rewear-web/internal/services/notify"
	"github.com/rajivgeraev/rewear-web/internal/services/profile"
	"github.com/rajivgeraev/rewear-web/internal/services/search"
	"github.com/rajivgeraev/rewear-web/internal/services/swaps"
	"github.com/rajivgeraev/rewear-web/internal/services/upload"
	"github.com/rajivgeraev/rewear-web/internal/session"
	"github.com/rajivgeraev/rewear-web/internal/web"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.LoadConfig()

	// API-клиент бэкенда ReWear
	api := rewear.New(cfg.APIBaseURL)

	// Хранилище сессий: Redis при заданном REDIS_URL, иначе память
	var store session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("❌ Ошибка при подключении к Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("✅ Сессии хранятся в Redis")
	} else {
		store = session.NewMemoryStore()
		log.Println("⚠️ REDIS_URL не задан, сессии хранятся в памяти")
	}

	sessions := session.NewManager(api, store)
	notifier := notifications.NewManager()
	defer notifier.Shutdown()

	// Создаём экземпляр Fiber
	app := fiber.New(fiber.Config{
		AppName:      "ReWear Web",
		ErrorHandler: errorHandler,
	})

	// Добавляем middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Создаём сервисы
	authService := auth.NewAuthService(cfg, api, sessions)
	itemsService := items.NewItemsService(api, sessions)
	swapService := swaps.NewSwapService(api, sessions)
	profileService := profile.NewProfileService(api)
	adminService := admin.NewAdminService(api, sessions)
	searchService := search.NewSearchService(api)
	uploadService := upload.NewUploadService(api)
	notifyService := notify.NewNotifyService(api, sessions, notifier)

	// Регистрируем маршруты
	authService.SetupRoutes(app)
	itemsService.SetupRoutes(app)
	swapService.SetupRoutes(app)
	profileService.SetupRoutes(app)
	adminService.SetupRoutes(app)
	searchService.SetupRoutes(app)
	uploadService.SetupRoutes(app)
	notifyService.SetupRoutes(app)

	// Проверка живости шлюза и бэкенда
	app.Get("/health", func(c fiber.Ctx) error {
		raw, err := api.Health(c.Context())
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"status":  "degraded",
				"backend": "unreachable",
			})
		}
		return web.SendRaw(c, raw)
	})

	// Запускаем сервер
	log.Printf("✅ ReWear Web запущен на порту %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
