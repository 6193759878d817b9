// Package client реализует HTTP-клиент API планировщика: хранилище маршрутов
// (Trip Store) и доступ к каталогу направлений. Все ошибки типизированы
// (см. errors.go); автоматических повторов нет.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripplanner/internal/cache"
	"tripplanner/internal/model"
)

// Client - клиент HTTP API планировщика.
type Client struct {
	baseURL      string
	http         *http.Client
	destinations *cache.LRU // кэш GET /api/destinations/:id
}

// New создает клиент для API по указанному базовому адресу.
// Кэш направлений внедряется снаружи; nil отключает кэширование.
func New(baseURL string, destinations *cache.LRU) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: 30 * time.Second},
		destinations: destinations,
	}
}

// FetchTrip получает маршрут по идентификатору.
// 404 различим как ErrNotFound, остальные сбои - *FetchError.
func (c *Client) FetchTrip(id string) (*model.Trip, error) {
	url := c.baseURL + "/api/trips/" + id
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	var trip model.Trip
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("некорректный ответ сервера: %w", err)}
	}
	return &trip, nil
}

// CreateTrip отправляет черновик и возвращает созданный сервером маршрут
// с назначенным идентификатором.
func (c *Client) CreateTrip(draft model.TripDraft) (*model.Trip, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, &CreateError{Err: err}
	}
	resp, err := c.http.Post(c.baseURL+"/api/trips", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, &CreateError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, &CreateError{StatusCode: resp.StatusCode}
	}
	var trip model.Trip
	if err := json.NewDecoder(resp.Body).Decode(&trip); err != nil {
		return nil, &CreateError{Err: fmt.Errorf("некорректный ответ сервера: %w", err)}
	}
	return &trip, nil
}

// UpdateTrip сохраняет маршрут целиком (полная замена, PUT).
// Частичных обновлений API не поддерживает.
func (c *Client) UpdateTrip(id string, trip *model.Trip) error {
	body, err := json.Marshal(trip)
	if err != nil {
		return &UpdateError{Err: err}
	}
	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/api/trips/"+id, bytes.NewReader(body))
	if err != nil {
		return &UpdateError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return &UpdateError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &UpdateError{StatusCode: resp.StatusCode}
	}
	return nil
}

// DeleteTrip удаляет маршрут на сервере. При ошибке вызывающий код обязан
// оставить маршрут в своем локальном списке; подтверждение удаления - тоже
// забота вызывающего кода.
func (c *Client) DeleteTrip(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/api/trips/"+id, nil)
	if err != nil {
		return &DeleteError{Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &DeleteError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &DeleteError{StatusCode: resp.StatusCode}
	}
	return nil
}

// ListUserTrips возвращает маршруты пользователя.
func (c *Client) ListUserTrips(userID int) ([]model.Trip, error) {
	url := c.baseURL + "/api/users/" + strconv.Itoa(userID) + "/trips"
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	trips := []model.Trip{}
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("некорректный ответ сервера: %w", err)}
	}
	return trips, nil
}

// Destination возвращает направление по идентификатору, используя кэш для
// повторных запросов. Кэш инвалидируется явно (см. cache.LRU).
func (c *Client) Destination(id int) (*model.Destination, error) {
	key := strconv.Itoa(id)
	if c.destinations != nil {
		if v, ok := c.destinations.Get(key); ok {
			return v.(*model.Destination), nil
		}
	}
	url := c.baseURL + "/api/destinations/" + key
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	var dest model.Destination
	if err := json.NewDecoder(resp.Body).Decode(&dest); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("некорректный ответ сервера: %w", err)}
	}
	if c.destinations != nil {
		c.destinations.Put(key, &dest)
	}
	return &dest, nil
}

// SearchDestinations выполняет поиск направлений по фильтрам.
// Пустые параметры не передаются.
func (c *Client) SearchDestinations(category, region string, minRating float64, keyword string) ([]model.Destination, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if region != "" {
		params.Set("region", region)
	}
	if minRating > 0 {
		params.Set("min_rating", strconv.FormatFloat(minRating, 'f', -1, 64))
	}
	if keyword != "" {
		params.Set("q", keyword)
	}
	endpoint := c.baseURL + "/api/destinations"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	resp, err := c.http.Get(endpoint)
	if err != nil {
		return nil, &FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{URL: endpoint, StatusCode: resp.StatusCode}
	}
	dests := []model.Destination{}
	if err := json.NewDecoder(resp.Body).Decode(&dests); err != nil {
		return nil, &FetchError{URL: endpoint, Err: fmt.Errorf("некорректный ответ сервера: %w", err)}
	}
	return dests, nil
}
