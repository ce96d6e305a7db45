package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all HTTP routes. matchMiddleware is applied to
// the match and geocode routes only, since both may call the geocoder.
func (h *Handler) RegisterRoutes(e *echo.Echo, matchMiddleware ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	providers := api.Group("/providers")
	providers.GET("", h.providerHTTP.ListProviders)
	providers.GET("/name_list", h.providerHTTP.ListProviderNames)
	providers.GET("/id/:id", h.providerHTTP.GetProvider)
	providers.POST("/name", h.providerHTTP.FindProvidersByName)
	providers.POST("/match", h.providerHTTP.MatchProviders, matchMiddleware...)

	utilsGroup := api.Group("/utils")
	utilsGroup.POST("/geocode", h.providerHTTP.Geocode, matchMiddleware...)
}
