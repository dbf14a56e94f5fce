package handler

import (
	"net/http"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// LostFoundHandler handles the lost & found endpoints.
type LostFoundHandler struct {
	lostFoundUsecase usecase.LostFoundUsecase
	searchUsecase    usecase.SearchUsecase
}

// NewLostFoundHandler is the constructor for LostFoundHandler.
func NewLostFoundHandler(lostFoundUsecase usecase.LostFoundUsecase, searchUsecase usecase.SearchUsecase) *LostFoundHandler {
	return &LostFoundHandler{
		lostFoundUsecase: lostFoundUsecase,
		searchUsecase:    searchUsecase,
	}
}

type createLostFoundRequest struct {
	Type          string    `json:"type" validate:"required,oneof=lost found"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude" validate:"required"`
	Longitude     float64   `json:"longitude" validate:"required"`
	ImageURL      string    `json:"imageUrl"`
	ContactMethod string    `json:"contactMethod"`
	ContactInfo   string    `json:"contactInfo"`
	Date          time.Time `json:"date"`
}

type updateLostFoundStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active resolved expired"`
}

type lostFoundResponse struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Location      string    `json:"location,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	ContactMethod string    `json:"contactMethod"`
	ContactInfo   string    `json:"contactInfo,omitempty"`
	Status        string    `json:"status"`
	UserID        string    `json:"userId"`
	Date          time.Time `json:"date"`
	DistanceKm    *float64  `json:"distanceKm,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toLostFoundResponse(item *entity.LostFoundItem) *lostFoundResponse {
	return &lostFoundResponse{
		ID:            item.ID,
		Type:          string(item.Type),
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		Location:      item.Location,
		Latitude:      item.Latitude,
		Longitude:     item.Longitude,
		ImageURL:      item.ImageURL,
		ContactMethod: string(item.ContactMethod),
		ContactInfo:   item.ContactInfo,
		Status:        string(item.Status),
		UserID:        item.UserID,
		Date:          item.Date,
		CreatedAt:     item.CreatedAt,
	}
}

// CreateItem handles POST /lostfound.
func (h *LostFoundHandler) CreateItem(c echo.Context) error {
	var req createLostFoundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.lostFoundUsecase.CreateItem(c.Request().Context(), middleware.UserID(c), &usecase.CreateLostFoundInput{
		Type:          entity.LostFoundType(req.Type),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ImageURL:      req.ImageURL,
		ContactMethod: entity.ContactMethod(req.ContactMethod),
		ContactInfo:   req.ContactInfo,
		Date:          req.Date,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toLostFoundResponse(item), "Item created")
}

// SearchNearby handles GET /lostfound/nearby.
func (h *LostFoundHandler) SearchNearby(c echo.Context) error {
	radiusKm, err := parseRadius(c.QueryParam("radius_km"))
	if err != nil {
		return err
	}

	itemType := c.QueryParam("type")
	if itemType == "all" {
		itemType = ""
	}

	latitude, longitude := originParams(c)

	results, err := h.searchUsecase.SearchNearbyLostFound(c.Request().Context(), &usecase.NearbyLostFoundInput{
		UserID:    middleware.UserID(c),
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
		Type:      entity.LostFoundType(itemType),
		Category:  c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	items := make([]*lostFoundResponse, 0, len(results))
	for _, result := range results {
		item := toLostFoundResponse(&result.LostFoundItem)
		distance := result.DistanceKm
		item.DistanceKm = &distance
		items = append(items, item)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetItem handles GET /lostfound/:id.
func (h *LostFoundHandler) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid item ID")
	}

	item, err := h.lostFoundUsecase.GetItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLostFoundResponse(item), "")
}

// GetMyItems handles GET /lostfound/mine.
func (h *LostFoundHandler) GetMyItems(c echo.Context) error {
	itemType := c.QueryParam("type")
	if itemType == "all" {
		itemType = ""
	}

	items, err := h.lostFoundUsecase.GetUserItems(c.Request().Context(), middleware.UserID(c),
		entity.LostFoundType(itemType),
		entity.LostFoundStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}

	results := make([]*lostFoundResponse, 0, len(items))
	for _, item := range items {
		results = append(results, toLostFoundResponse(item))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// UpdateStatus handles PATCH /lostfound/:id/status.
func (h *LostFoundHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid item ID")
	}

	var req updateLostFoundStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.lostFoundUsecase.UpdateItemStatus(c.Request().Context(), middleware.UserID(c), id,
		entity.LostFoundStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLostFoundResponse(item), "Status updated")
}

// ListCategories handles GET /lostfound/categories.
func (h *LostFoundHandler) ListCategories(c echo.Context) error {
	categories, err := h.lostFoundUsecase.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories, "")
}
