package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
	"github.com/piresc/optimat/services/provider"
)

// ProviderHandler handles HTTP requests for provider operations
type ProviderHandler struct {
	providerUC provider.ProviderUC
}

// NewProviderHandler creates a new provider HTTP handler
func NewProviderHandler(providerUC provider.ProviderUC) *ProviderHandler {
	return &ProviderHandler{
		providerUC: providerUC,
	}
}

// NameRequest is the body of a name search
type NameRequest struct {
	Name string `json:"name"`
}

// ListProviders returns the whole catalog
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	ctx := c.Request().Context()

	providers, err := h.providerUC.ListProviders(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list providers", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve providers", utils.ErrorDetail(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("Found %d providers", len(providers)), providers)
}

// ListProviderNames returns every provider name
func (h *ProviderHandler) ListProviderNames(c echo.Context) error {
	ctx := c.Request().Context()

	names, err := h.providerUC.ListProviderNames(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list provider names", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve provider names", utils.ErrorDetail(err))
	}
	if len(names) == 0 {
		return utils.NotFoundResponse(c, "No providers found", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("Found %d provider names", len(names)), names)
}

// GetProvider returns one provider by id
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, utils.CodeInvalidRequest, "Invalid provider id",
			map[string]string{"id": c.Param("id")})
	}

	detail, err := h.providerUC.GetProvider(ctx, id)
	if err != nil {
		if errors.Is(err, provider.ErrProviderNotFound) {
			return utils.NotFoundResponse(c, "Provider not found", nil)
		}
		logger.ErrorCtx(ctx, "Failed to get provider", logger.Int64("provider_id", id), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve provider", utils.ErrorDetail(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("Provider %d retrieved successfully", id), detail)
}

// FindProvidersByName searches providers by a case-insensitive name fragment
func (h *ProviderHandler) FindProvidersByName(c echo.Context) error {
	ctx := c.Request().Context()

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, utils.CodeInvalidRequest, "Invalid request", utils.ErrorDetail(err))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return utils.BadRequestResponse(c, utils.CodeInvalidRequest, "Invalid request",
			map[string]string{"error": "Name parameter is required"})
	}

	providers, err := h.providerUC.FindProvidersByName(ctx, name)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to search providers", logger.String("name", name), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to search providers", utils.ErrorDetail(err))
	}
	if len(providers) == 0 {
		return utils.NotFoundResponse(c, "Provider not found", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK,
		fmt.Sprintf("Found %d providers matching '%s'", len(providers), name), providers)
}

// MatchProviders runs the matching engine for one trip
func (h *ProviderHandler) MatchProviders(c echo.Context) error {
	ctx := c.Request().Context()

	var criteria models.MatchCriteria
	if err := c.Bind(&criteria); err != nil {
		return utils.BadRequestResponse(c, utils.CodeInvalidRequest, "Invalid request", utils.ErrorDetail(err))
	}

	results, err := h.providerUC.MatchProviders(ctx, criteria)
	if err != nil {
		if me, ok := provider.AsMatchError(err); ok {
			return utils.ErrorResponseHandler(c, me.HTTPStatus(), me.Code, me.Message, me.Details)
		}
		logger.ErrorCtx(ctx, "Unexpected match failure", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to match providers", utils.ErrorDetail(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, fmt.Sprintf("Found %d matching providers", len(results)), results)
}
