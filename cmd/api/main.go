package main

import (
	"log"
	"os"
	"path/filepath"

	"tripplanner/internal/handler"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	// Читаем параметры подключения к БД из переменных окружения
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	// Выполняем миграции (если есть)
	applyMigrations(db, "migrations/*.sql")

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Инициализируем сервисы
	userService := service.NewUserService(userRepo)
	destinationService := service.NewDestinationService(destinationRepo)
	tripService := service.NewTripService(tripRepo)
	bookingService := service.NewBookingService(bookingRepo)
	storyService := service.NewStoryService(storyRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(userService, destinationService, tripService, bookingService, storyService, favoriteService)
	router := gin.Default()
	h.RegisterRoutes(router.Group("/api"))

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// applyMigrations применяет SQL-файлы по маске, каждый в своей транзакции:
// упавший файл откатывается целиком и не мешает остальным.
func applyMigrations(db *sqlx.DB, pattern string) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return
	}
	for _, file := range files {
		tx, err := db.Beginx()
		if err != nil {
			log.Printf("Ошибка при инициации транзакции миграции: %v", err)
			continue
		}
		err = func() error {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				return readErr
			}
			if _, execErr := tx.Exec(string(content)); execErr != nil {
				return execErr
			}
			return nil
		}()
		if err != nil {
			log.Printf("Миграция %s завершилась ошибкой: %v", file, err)
			tx.Rollback()
		} else {
			tx.Commit()
			log.Printf("Миграция %s применена.", file)
		}
	}
}
