package services

import (
	"log/slog"
	"testing"

	"estate-hub/domain"
	"estate-hub/errors"
	"estate-hub/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listing(id string) domain.Property {
	return domain.Property{
		ID:          id,
		Title:       "Lekki duplex",
		Description: "Detached duplex with boys quarters",
		Price:       50000000,
		Location: domain.Location{
			Address:     "12 Admiralty Way",
			City:        "Lekki",
			State:       "Lagos",
			Coordinates: domain.Coordinates{Lat: 6.43, Lng: 3.47},
		},
		PropertyType: domain.PropertyTypeHouse,
		Bedrooms:     lo.ToPtr(4),
		Bathrooms:    lo.ToPtr(3),
		Area:         320,
		Amenities:    []string{"pool"},
		Images:       []string{"https://cdn.example.com/p/1.jpg"},
		AgentID:      "agent-1",
		AgentName:    "Ada Obi",
		CreatedAt:    "2024-05-01T10:00:00.000Z",
		UpdatedAt:    "2024-05-01T10:00:00.000Z",
	}
}

func TestPropertyService_Import(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	source := listing("source-id")
	text, err := domain.Serialize(source)
	require.NoError(t, err)

	t.Run("Should store a valid listing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIPropertyRepository(ctrl)
		service := NewPropertyService(log, repository, 20, 100)

		stored := listing("new-id")
		repository.EXPECT().Create(source).Return(stored, nil).Times(1)

		response, err := domain.Deserialize[domain.ApiResponse[domain.Property]](service.Import(text))
		req.NoError(err)
		req.True(response.Success)
		req.Equal(stored, *response.Data)
		req.Equal("property new-id imported", *response.Message)
		req.Nil(response.Error)
	})

	t.Run("Should reject an invalid listing without storing it", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIPropertyRepository(ctrl)
		service := NewPropertyService(log, repository, 20, 100)

		repository.EXPECT().Create(gomock.Any()).Times(0)

		invalid := []byte(`{"id":"p1"}`)
		response, err := domain.Deserialize[domain.ApiResponse[domain.Property]](service.Import(invalid))
		req.NoError(err)
		req.False(response.Success)
		req.Nil(response.Data)
		req.Equal("validation failed on title: is required", *response.Error)
	})

	t.Run("Should report malformed JSON", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIPropertyRepository(ctrl)
		service := NewPropertyService(log, repository, 20, 100)

		response, err := domain.Deserialize[domain.ApiResponse[domain.Property]](service.Import([]byte(`{"id":`)))
		req.NoError(err)
		req.False(response.Success)
		req.Contains(*response.Error, "malformed document at offset 6")
	})

	t.Run("Should report storage failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIPropertyRepository(ctrl)
		service := NewPropertyService(log, repository, 20, 100)

		repository.EXPECT().Create(source).Return(domain.Property{}, errors.ErrCorruptedRecord).Times(1)

		response, err := domain.Deserialize[domain.ApiResponse[domain.Property]](service.Import(text))
		req.NoError(err)
		req.False(response.Success)
		req.Equal(errors.ErrCorruptedRecord.Error(), *response.Error)
	})
}

func TestPropertyService_List_Page_Size(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		name    string
		perPage int
		want    int
	}{
		{"Requested size is kept", 10, 10},
		{"Zero falls back to the default", 0, 20},
		{"Negative falls back to the default", -5, 20},
		{"Large sizes are capped", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repository := mocks.NewMockIPropertyRepository(ctrl)
			service := NewPropertyService(log, repository, 20, 100)

			page := domain.NewPaginatedResponse([]domain.Property{listing("p1")}, 1, 1, tt.want)
			repository.EXPECT().List(1, tt.want).Return(page, nil).Times(1)

			response, err := domain.Deserialize[domain.ApiResponse[domain.PaginatedResponse[domain.Property]]](service.List(1, tt.perPage))
			req.NoError(err)
			req.True(response.Success)
			req.Equal(page, *response.Data)
		})
	}
}

func TestPropertyService_List_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIPropertyRepository(ctrl)
	service := NewPropertyService(logs.GetLoggerFromLevel(slog.LevelDebug), repository, 20, 100)

	repository.EXPECT().List(9, 20).
		Return(domain.PaginatedResponse[domain.Property]{}, errors.NewValidationError("currentPage", "must be between 1 and 1")).
		Times(1)

	response, err := domain.Deserialize[domain.ApiResponse[domain.PaginatedResponse[domain.Property]]](service.List(9, 0))
	req.NoError(err)
	req.False(response.Success)
	req.Equal("validation failed on currentPage: must be between 1 and 1", *response.Error)
}
