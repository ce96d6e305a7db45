package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
)

const (
	codeMissingAddress  = "MISSING_ADDRESS"
	codeGeocodingFailed = "GEOCODING_FAILED"
)

// GeocodeRequest is the body of the geocode utility endpoint
type GeocodeRequest struct {
	Address string `json:"address"`
}

// Geocode resolves a single address
func (h *ProviderHandler) Geocode(c echo.Context) error {
	var req GeocodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeInvalidRequest, "Invalid request", utils.ErrorDetail(err))
	}
	address := utils.NormalizeAddress(req.Address)
	if address == "" {
		return utils.BadRequestResponse(c, codeMissingAddress, "Address is required", nil)
	}

	coord, ok := h.providerUC.Geocode(c.Request().Context(), address)
	if !ok {
		return utils.BadRequestResponse(c, codeGeocodingFailed, "Failed to geocode address",
			map[string]string{"address": address})
	}

	pair := coord.Pair()
	return utils.SuccessResponse(c, http.StatusOK, "Address geocoded successfully", models.GeocodeResult{
		Address:     address,
		Coordinates: &pair,
		Geohash:     utils.EncodeCoordinate(coord, utils.DefaultGeohashPrecision),
	})
}
