package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	if dbHost == "" {
		dbHost = "db"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)

	token := os.Getenv("NOTIFIER_BOT_TOKEN")
	if token == "" {
		log.Fatal("Не указан токен бота уведомлений (NOTIFIER_BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatal("Ошибка инициализации бота уведомлений:", err)
	}
	log.Printf("Запущен бот уведомлений %s", bot.Self.UserName)

	// Фоновая рассылка: периодически проверяем бронирования без уведомлений.
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			notifyPending(bot, bookingRepo, destinationRepo, userRepo)
		}
	}()

	// Обрабатываем входящие команды: провайдер проверяет привязку аккаунта.
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		chatID := update.Message.Chat.ID
		switch update.Message.Command() {
		case "start":
			user, err := userRepo.GetByTelegramID(update.Message.From.ID)
			if err != nil || user.Role != "provider" {
				bot.Send(tgbotapi.NewMessage(chatID, "Этот бот рассылает уведомления провайдерам. Привяжите Telegram в профиле на сайте."))
				continue
			}
			bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Здравствуйте, %s! Уведомления о бронированиях включены.", user.FirstName)))
		}
	}
}

// notifyPending отправляет провайдерам уведомления о новых бронированиях и
// изменениях статуса. Бронирование отмечается обработанным даже без адресата,
// чтобы не рассылать его повторно.
func notifyPending(bot *tgbotapi.BotAPI, bookingRepo *repository.BookingRepository,
	destinationRepo *repository.DestinationRepository, userRepo *repository.UserRepository) {
	bookings, err := bookingRepo.ListUnnotified()
	if err != nil {
		log.Printf("Ошибка получения бронирований: %v", err)
		return
	}
	for _, booking := range bookings {
		if err := sendBookingNotice(bot, booking, destinationRepo, userRepo); err != nil {
			log.Printf("Бронирование %d: %v", booking.ID, err)
		}
		if err := bookingRepo.MarkNotified(booking.ID); err != nil {
			log.Printf("Не удалось отметить бронирование %d: %v", booking.ID, err)
		}
	}
}

// sendBookingNotice доставляет одно уведомление провайдеру направления.
func sendBookingNotice(bot *tgbotapi.BotAPI, booking model.Booking,
	destinationRepo *repository.DestinationRepository, userRepo *repository.UserRepository) error {
	destination, err := destinationRepo.GetByID(booking.DestinationID)
	if err != nil {
		return fmt.Errorf("направление не найдено: %w", err)
	}
	if destination.ProviderID == nil {
		return nil // у направления нет провайдера - уведомлять некого
	}
	provider, err := userRepo.GetByID(*destination.ProviderID)
	if err != nil {
		return fmt.Errorf("провайдер не найден: %w", err)
	}
	if provider.TelegramID == 0 {
		return nil // Telegram не привязан
	}

	var text string
	switch booking.Status {
	case "pending":
		text = fmt.Sprintf("Новая заявка #%d на \"%s\".\nДетали: %s", booking.ID, destination.Name, booking.Details)
	default:
		text = fmt.Sprintf("Заявка #%d на \"%s\" переведена в статус %q.", booking.ID, destination.Name, booking.Status)
	}
	if _, err := bot.Send(tgbotapi.NewMessage(provider.TelegramID, text)); err != nil {
		return fmt.Errorf("не удалось отправить сообщение: %w", err)
	}
	return nil
}
