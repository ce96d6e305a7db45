package nsq

import (
	"context"
	"time"

	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	nsqpkg "github.com/piresc/optimat/internal/pkg/nsq"
	"github.com/piresc/optimat/services/provider"
)

const invalidateTimeout = 5 * time.Second

// CatalogHandler reacts to provider catalog change events
type CatalogHandler struct {
	providerUC provider.ProviderUC
}

// NewCatalogHandler creates a new catalog event handler
func NewCatalogHandler(providerUC provider.ProviderUC) *CatalogHandler {
	return &CatalogHandler{
		providerUC: providerUC,
	}
}

// InitConsumer subscribes HandleCatalogChanged to the catalog topic
func (h *CatalogHandler) InitConsumer(cfg models.NSQConfig, l *logger.ZapLogger) (*nsqpkg.Consumer, error) {
	return nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:            cfg.Topic,
		Channel:          cfg.Channel,
		Address:          cfg.Address,
		LookupdAddresses: cfg.LookupdAddress,
	}, h.HandleCatalogChanged, l)
}

// HandleCatalogChanged drops the cached candidate list. Any message counts,
// including ones whose body cannot be decoded.
func (h *CatalogHandler) HandleCatalogChanged(body []byte) error {
	var event models.CatalogEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Warn("Unreadable catalog event, invalidating anyway", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	if err := h.providerUC.InvalidateCatalog(ctx); err != nil {
		return err
	}

	logger.Info("Provider catalog invalidated",
		logger.String("action", event.Action),
		logger.Int64("provider_id", event.ProviderID))
	return nil
}
