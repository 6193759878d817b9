package handler_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tripplanner/internal/handler"
)

// Полный список маршрутов API. Тест ловит случайно выпавшие из
// RegisterRoutes обработчики.
func TestRegisterRoutesAPISurface(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := handler.NewHandler(nil, nil, nil, nil, nil, nil)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/trips/:id",
		"POST /api/trips",
		"PUT /api/trips/:id",
		"DELETE /api/trips/:id",
		"GET /api/users/:userId/trips",
		"GET /api/users/:userId",
		"POST /api/users",
		"GET /api/destinations",
		"GET /api/destinations/:id",
		"POST /api/destinations/:id/photos",
		"POST /api/bookings",
		"GET /api/bookings/:id",
		"PUT /api/bookings/:id/status",
		"GET /api/users/:userId/bookings",
		"GET /api/stories",
		"POST /api/stories",
		"GET /api/users/:userId/stories",
		"GET /api/users/:userId/favorites",
		"POST /api/users/:userId/favorites/:destinationId",
		"DELETE /api/users/:userId/favorites/:destinationId",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "маршрут %s не зарегистрирован", route)
	}
	assert.Len(t, registered, len(expected))
}
