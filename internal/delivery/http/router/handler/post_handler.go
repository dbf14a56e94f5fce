package handler

import (
	"net/http"
	"strconv"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/geo"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostHandler handles the post endpoints, including nearby search.
type PostHandler struct {
	postUsecase    usecase.PostUsecase
	searchUsecase  usecase.SearchUsecase
	addressUsecase usecase.AddressUsecase
	authUsecase    usecase.AuthUsecase
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(
	postUsecase usecase.PostUsecase,
	searchUsecase usecase.SearchUsecase,
	addressUsecase usecase.AddressUsecase,
	authUsecase usecase.AuthUsecase,
) *PostHandler {
	return &PostHandler{
		postUsecase:    postUsecase,
		searchUsecase:  searchUsecase,
		addressUsecase: addressUsecase,
		authUsecase:    authUsecase,
	}
}

type createPostRequest struct {
	Skill       string  `json:"skill" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" validate:"required"`
}

type postResponse struct {
	ID          uuid.UUID        `json:"id"`
	Skill       string           `json:"skill"`
	Description string           `json:"description,omitempty"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	UserID      string           `json:"userId"`
	Creator     *profileResponse `json:"creator,omitempty"`
	DistanceKm  *float64         `json:"distanceKm,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func toPostResponse(post *entity.Post) *postResponse {
	return &postResponse{
		ID:          post.ID,
		Skill:       post.Skill,
		Description: post.Description,
		Latitude:    post.Latitude,
		Longitude:   post.Longitude,
		UserID:      post.UserID,
		CreatedAt:   post.CreatedAt,
	}
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postUsecase.CreatePost(c.Request().Context(), middleware.UserID(c), &usecase.CreatePostInput{
		Skill:       req.Skill,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created")
}

// SearchNearby handles GET /posts/nearby.
func (h *PostHandler) SearchNearby(c echo.Context) error {
	radiusKm, err := parseRadius(c.QueryParam("radius_km"))
	if err != nil {
		return err
	}

	latitude, longitude := originParams(c)

	results, err := h.searchUsecase.SearchNearbyPosts(c.Request().Context(), &usecase.NearbyPostsInput{
		UserID:    middleware.UserID(c),
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
		Skill:     c.QueryParam("skill"),
	})
	if err != nil {
		return err
	}

	posts := make([]*postResponse, 0, len(results))
	for _, result := range results {
		item := toPostResponse(&result.Post)
		distance := result.DistanceKm
		item.DistanceKm = &distance
		posts = append(posts, item)
	}

	return response.Success(c, http.StatusOK, posts, "")
}

// GetPost handles GET /posts/:id. When the caller has a registered address
// the response carries the distance from it.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid post ID")
	}

	ctx := c.Request().Context()
	post, err := h.postUsecase.GetPost(ctx, id)
	if err != nil {
		return err
	}

	item := toPostResponse(post)
	if creator, err := h.authUsecase.GetProfile(ctx, post.UserID); err == nil {
		item.Creator = toProfileResponse(creator)
	}
	if userID := middleware.UserID(c); userID != "" {
		if address, err := h.addressUsecase.GetAddress(ctx, userID); err == nil {
			distance := geo.DistanceKm(address.Coordinate(), post.Coordinate())
			item.DistanceKm = &distance
		}
	}

	return response.Success(c, http.StatusOK, item, "")
}

// GetMyPosts handles GET /posts/mine.
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	posts, err := h.postUsecase.GetUserPosts(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	results := make([]*postResponse, 0, len(posts))
	for _, post := range posts {
		results = append(results, toPostResponse(post))
	}

	return response.Success(c, http.StatusOK, results, "")
}

// DeletePost handles DELETE /posts/:id.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid post ID")
	}

	if err := h.postUsecase.DeletePost(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPostQR handles GET /posts/:id/qrcode.
func (h *PostHandler) GetPostQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("invalid post ID")
	}

	png, err := h.postUsecase.GeneratePostQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// originParams returns the latitude and longitude query parameters, blanked
// when the caller asks to search from their registered address instead.
func originParams(c echo.Context) (latitude, longitude string) {
	if c.QueryParam("use_registered_address") == "true" {
		return "", ""
	}

	return c.QueryParam("latitude"), c.QueryParam("longitude")
}

// parseRadius parses the radius_km query parameter. Absent means "use the
// configured default" and is carried as nil; a present but unparsable value
// is an input error. Non-positive values pass through so the search layer
// rejects them.
func parseRadius(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	radiusKm, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("radius_km must be a number")
	}

	return &radiusKm, nil
}
