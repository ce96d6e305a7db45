package handler

import (
	"github.com/piresc/optimat/services/provider"
	httpHandler "github.com/piresc/optimat/services/provider/handler/http"
	nsqHandler "github.com/piresc/optimat/services/provider/handler/nsq"
)

// Handler combines all handlers for the provider service
type Handler struct {
	providerHTTP *httpHandler.ProviderHandler
	catalogNSQ   *nsqHandler.CatalogHandler
}

// NewHandler creates a new combined handler
func NewHandler(providerUC provider.ProviderUC) *Handler {
	return &Handler{
		providerHTTP: httpHandler.NewProviderHandler(providerUC),
		catalogNSQ:   nsqHandler.NewCatalogHandler(providerUC),
	}
}

// Catalog returns the NSQ catalog event handler
func (h *Handler) Catalog() *nsqHandler.CatalogHandler {
	return h.catalogNSQ
}
