package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
	"github.com/piresc/optimat/services/provider/mocks"
	"github.com/stretchr/testify/assert"
)

func TestGeocode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProviderUC(ctrl)
	h := NewProviderHandler(mockUC)
	seattle := models.Coordinate{Longitude: -122.3321, Latitude: 47.6062}

	mockUC.EXPECT().Geocode(gomock.Any(), "1 Main St Seattle").Return(seattle, true)

	c, rec := newTestContext(http.MethodPost, "/api/v1/utils/geocode", `{"address": " 1 Main St   Seattle "}`)
	err := h.Geocode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	response := decodeBody(t, rec)
	assert.Equal(t, "Address geocoded successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{-122.3321, 47.6062}, data["coordinates"])
	assert.Equal(t, "1 Main St Seattle", data["address"])
	assert.Equal(t, utils.EncodeCoordinate(seattle, utils.DefaultGeohashPrecision), data["geohash"])
}

func TestGeocode_MissingAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewProviderHandler(mocks.NewMockProviderUC(ctrl))

	c, rec := newTestContext(http.MethodPost, "/api/v1/utils/geocode", `{"address": "   "}`)
	err := h.Geocode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decodeBody(t, rec)
	assert.Equal(t, codeMissingAddress, response["error_code"])
	assert.Equal(t, "Address is required", response["error"])
}

func TestGeocode_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProviderUC(ctrl)
	h := NewProviderHandler(mockUC)

	mockUC.EXPECT().Geocode(gomock.Any(), "nowhere").Return(models.Coordinate{}, false)

	c, rec := newTestContext(http.MethodPost, "/api/v1/utils/geocode", `{"address": "nowhere"}`)
	err := h.Geocode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	response := decodeBody(t, rec)
	assert.Equal(t, codeGeocodingFailed, response["error_code"])
	assert.Equal(t, "nowhere", response["details"].(map[string]interface{})["address"])
}
