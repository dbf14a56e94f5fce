package handler

import (
	"net/http"
	"strconv"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	"localhelp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RatingHandler handles the user-rating endpoints.
type RatingHandler struct {
	ratingUsecase usecase.RatingUsecase
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(ratingUsecase usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{ratingUsecase: ratingUsecase}
}

type rateUserRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ratingResponse struct {
	UserID    string    `json:"userId"`
	RaterID   string    `json:"raterId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type ratingSummaryResponse struct {
	UserID       string  `json:"userId"`
	AverageScore float64 `json:"averageScore"`
	TotalRatings int64   `json:"totalRatings"`
}

func toRatingResponse(rating *entity.UserRating) *ratingResponse {
	return &ratingResponse{
		UserID:    rating.UserID,
		RaterID:   rating.RaterID,
		Score:     rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
}

// RateUser handles POST /ratings.
func (h *RatingHandler) RateUser(c echo.Context) error {
	var req rateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rating, err := h.ratingUsecase.RateUser(c.Request().Context(), middleware.UserID(c), &usecase.RateUserInput{
		UserID:  req.UserID,
		Score:   req.Score,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toRatingResponse(rating), "Rating saved")
}

// GetSummary handles GET /ratings/:userId.
func (h *RatingHandler) GetSummary(c echo.Context) error {
	summary, err := h.ratingUsecase.GetRatingSummary(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ratingSummaryResponse{
		UserID:       summary.UserID,
		AverageScore: summary.AverageScore,
		TotalRatings: summary.TotalRatings,
	}, "")
}

// GetDetails handles GET /ratings/:userId/details.
func (h *RatingHandler) GetDetails(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	ratings, err := h.ratingUsecase.GetUserRatings(c.Request().Context(), c.Param("userId"), limit, offset)
	if err != nil {
		return err
	}

	results := make([]*ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		results = append(results, toRatingResponse(rating))
	}

	return response.Success(c, http.StatusOK, results, "")
}
