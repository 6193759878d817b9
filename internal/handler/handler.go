package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"tripplanner/internal/model"
	"tripplanner/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	UserService        *service.UserService
	DestinationService *service.DestinationService
	TripService        *service.TripService
	BookingService     *service.BookingService
	StoryService       *service.StoryService
	FavoriteService    *service.FavoriteService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(us *service.UserService, ds *service.DestinationService, ts *service.TripService,
	bs *service.BookingService, ss *service.StoryService, fs *service.FavoriteService) *Handler {
	return &Handler{
		UserService:        us,
		DestinationService: ds,
		TripService:        ts,
		BookingService:     bs,
		StoryService:       ss,
		FavoriteService:    fs,
	}
}

// RegisterRoutes регистрирует все маршруты API на переданной группе.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/trips/:id", h.GetTrip)
	api.POST("/trips", h.CreateTrip)
	api.PUT("/trips/:id", h.UpdateTrip)
	api.DELETE("/trips/:id", h.DeleteTrip)
	api.GET("/users/:userId/trips", h.ListUserTrips)

	api.GET("/users/:userId", h.GetUser)
	api.POST("/users", h.CreateUser)

	api.GET("/destinations", h.ListDestinations)
	api.GET("/destinations/:id", h.GetDestination)
	api.POST("/destinations/:id/photos", h.AddDestinationPhoto)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	api.GET("/users/:userId/bookings", h.ListUserBookings)

	api.GET("/stories", h.ListStories)
	api.POST("/stories", h.CreateStory)
	api.GET("/users/:userId/stories", h.ListUserStories)

	api.GET("/users/:userId/favorites", h.ListFavorites)
	api.POST("/users/:userId/favorites/:destinationId", h.AddFavorite)
	api.DELETE("/users/:userId/favorites/:destinationId", h.RemoveFavorite)
}

// GetTrip обработчик для GET /api/trips/:id - возвращает маршрут целиком.
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.TripService.GetTrip(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Маршрут не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить маршрут"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

// CreateTrip обработчик для POST /api/trips - создает маршрут из черновика.
// Идентификатор назначается сервером и возвращается в ответе.
func (h *Handler) CreateTrip(c *gin.Context) {
	var draft model.TripDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	trip, err := h.TripService.CreateTrip(draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// UpdateTrip обработчик для PUT /api/trips/:id - полная замена маршрута.
func (h *Handler) UpdateTrip(c *gin.Context) {
	var trip model.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	if err := h.TripService.UpdateTrip(c.Param("id"), &trip); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Маршрут не найден"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteTrip обработчик для DELETE /api/trips/:id.
func (h *Handler) DeleteTrip(c *gin.Context) {
	if err := h.TripService.DeleteTrip(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Маршрут не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить маршрут"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserTrips обработчик для GET /api/users/:userId/trips.
func (h *Handler) ListUserTrips(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	trips, err := h.TripService.ListUserTrips(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить маршруты"})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetUser обработчик для GET /api/users/:userId - профиль пользователя.
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	user, err := h.UserService.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить пользователя"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// userRequest - тело POST /api/users: данные профиля от внешнего провайдера.
type userRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateUser обработчик для POST /api/users - создает профиль при первом
// входе. Повторный запрос с тем же email возвращает существующий профиль.
func (h *Handler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	user, err := h.UserService.EnsureProfile(req.Email, req.Username, req.FirstName, req.LastName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать профиль"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListDestinations обработчик для GET /api/destinations - поиск по каталогу
// с фильтрами category, region, min_rating и q.
func (h *Handler) ListDestinations(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)
	destinations, err := h.DestinationService.SearchDestinations(
		c.Query("category"), c.Query("region"), minRating, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить направления"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GetDestination обработчик для GET /api/destinations/:id - направление с фото.
func (h *Handler) GetDestination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID направления"})
		return
	}
	destination, photos, err := h.DestinationService.GetDestinationDetails(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Направление не найдено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить направление"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": destination, "photos": photos})
}

// photoRequest - тело POST /api/destinations/:id/photos.
type photoRequest struct {
	URL string `json:"url" binding:"required"`
}

// AddDestinationPhoto обработчик для POST /api/destinations/:id/photos.
func (h *Handler) AddDestinationPhoto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID направления"})
		return
	}
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	if err := h.DestinationService.AddPhoto(id, req.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось добавить фото"})
		return
	}
	c.Status(http.StatusCreated)
}

// bookingRequest - тело POST /api/bookings.
type bookingRequest struct {
	UserID        int    `json:"userId" binding:"required"`
	DestinationID int    `json:"destinationId" binding:"required"`
	Details       string `json:"details"`
}

// CreateBooking обработчик для POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	id, err := h.BookingService.CreateBooking(req.UserID, req.DestinationID, req.Details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать бронирование"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "pending"})
}

// GetBooking обработчик для GET /api/bookings/:id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бронирования"})
		return
	}
	booking, err := h.BookingService.GetBooking(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирование"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus обработчик для PUT /api/bookings/:id/status.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бронирования"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	if err := h.BookingService.SetStatus(id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserBookings обработчик для GET /api/users/:userId/bookings.
func (h *Handler) ListUserBookings(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	bookings, err := h.BookingService.ListUserBookings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирования"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListStories обработчик для GET /api/stories - последние истории (параметр limit).
func (h *Handler) ListStories(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	stories, err := h.StoryService.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить истории"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// CreateStory обработчик для POST /api/stories.
func (h *Handler) CreateStory(c *gin.Context) {
	var story model.Story
	if err := c.ShouldBindJSON(&story); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	id, err := h.StoryService.Publish(&story)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	story.ID = id
	c.JSON(http.StatusCreated, story)
}

// ListUserStories обработчик для GET /api/users/:userId/stories.
func (h *Handler) ListUserStories(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	stories, err := h.StoryService.ListUserStories(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить истории"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// favoriteParams разбирает пару идентификаторов из пути избранного.
func favoriteParams(c *gin.Context) (int, int, bool) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return 0, 0, false
	}
	destinationID, err := strconv.Atoi(c.Param("destinationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID направления"})
		return 0, 0, false
	}
	return userID, destinationID, true
}

// AddFavorite обработчик для POST /api/users/:userId/favorites/:destinationId.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, destinationID, ok := favoriteParams(c)
	if !ok {
		return
	}
	if err := h.FavoriteService.Add(userID, destinationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось добавить в избранное"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFavorite обработчик для DELETE /api/users/:userId/favorites/:destinationId.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, destinationID, ok := favoriteParams(c)
	if !ok {
		return
	}
	if err := h.FavoriteService.Remove(userID, destinationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось убрать из избранного"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites обработчик для GET /api/users/:userId/favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}
	destinations, err := h.FavoriteService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить избранное"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}
