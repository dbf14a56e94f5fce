package handler

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AddressHandler handles the registered-address endpoints.
type AddressHandler struct {
	addressUsecase usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(addressUsecase usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUsecase: addressUsecase}
}

type setAddressRequest struct {
	FullAddress string  `json:"fullAddress" validate:"required"`
	Latitude    float64 `json:"latitude" validate:"required"`
	Longitude   float64 `json:"longitude" validate:"required"`
}

type verifyAddressRequest struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

type addressResponse struct {
	FullAddress string    `json:"fullAddress"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Verified    bool      `json:"verified"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type verifyAddressResponse struct {
	Verified       bool `json:"verified"`
	DistanceMeters int  `json:"distanceMeters"`
}

func toAddressResponse(address *entity.RegisteredAddress) *addressResponse {
	return &addressResponse{
		FullAddress: address.FullAddress,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
		Verified:    address.Verified,
		UpdatedAt:   address.UpdatedAt,
	}
}

// GetAddress handles GET /address.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	address, err := h.addressUsecase.GetAddress(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "")
}

// SetAddress handles POST /address.
func (h *AddressHandler) SetAddress(c echo.Context) error {
	var req setAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.addressUsecase.SetAddress(c.Request().Context(), middleware.UserID(c), &usecase.SetAddressInput{
		FullAddress: req.FullAddress,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "Address saved")
}

// VerifyAddress handles POST /address/verify.
func (h *AddressHandler) VerifyAddress(c echo.Context) error {
	var req verifyAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.addressUsecase.VerifyAddress(c.Request().Context(), middleware.UserID(c), req.Latitude, req.Longitude)
	if err != nil {
		return err
	}

	distanceMeters := int(math.Round(result.DistanceKm * 1000))
	if !result.Verified {
		return domainerrors.ErrVerificationFailed.WithDetails(
			fmt.Sprintf("You are %d meters away from your registered address", distanceMeters))
	}

	return response.Success(c, http.StatusOK, verifyAddressResponse{
		Verified:       true,
		DistanceMeters: distanceMeters,
	}, "Address verified")
}
