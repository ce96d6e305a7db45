package nsq

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHandleCatalogChanged(t *testing.T) {
	testCases := []struct {
		name      string
		body      []byte
		ucErr     error
		expectErr bool
	}{
		{name: "Rebuilt event", body: []byte(`{"action":"rebuilt"}`)},
		{name: "Single provider event", body: []byte(`{"provider_id":7,"action":"updated"}`)},
		{name: "Unreadable body still invalidates", body: []byte(`not json`)},
		{name: "Invalidation failure requeues", body: []byte(`{"action":"rebuilt"}`), ucErr: errors.New("redis down"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockProviderUC(ctrl)
			h := NewCatalogHandler(mockUC)

			mockUC.EXPECT().InvalidateCatalog(gomock.Any()).Return(tc.ucErr).Times(1)

			err := h.HandleCatalogChanged(tc.body)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitConsumer_RequiresTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCatalogHandler(mocks.NewMockProviderUC(ctrl))

	_, err := h.InitConsumer(models.NSQConfig{Channel: "provider-service"}, nil)

	assert.Error(t, err)
}
