package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"
	"frontdesk/internal/domains/customer/repository"
	"frontdesk/internal/domains/customer/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

func TestCustomerService_Book(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	// Async cache invalidation and event publishing after a successful booking
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.BookRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful booking",
			req: dto.BookRoomRequest{
				Name:   "John Doe",
				Phone:  "08123456789",
				RoomNo: 101,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					BookRoom(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking with explicit check-in date",
			req: dto.BookRoomRequest{
				Name:        "Jane Doe",
				Phone:       "08123456780",
				RoomNo:      102,
				CheckinDate: "2026-09-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					BookRoom(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed check-in date",
			req: dto.BookRoomRequest{
				Name:        "Jane Doe",
				Phone:       "08123456780",
				RoomNo:      102,
				CheckinDate: "01/09/2026",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room does not exist",
			req: dto.BookRoomRequest{
				Name:   "John Doe",
				Phone:  "08123456789",
				RoomNo: 999,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "room already booked",
			req: dto.BookRoomRequest{
				Name:   "John Doe",
				Phone:  "08123456789",
				RoomNo: 101,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					BookRoom(gomock.Any(), gomock.Any()).
					Return(repository.ErrRoomUnavailable)
			},
			wantErr: true,
		},
		{
			name: "booking transaction error",
			req: dto.BookRoomRequest{
				Name:   "John Doe",
				Phone:  "08123456789",
				RoomNo: 101,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					BookRoom(gomock.Any(), gomock.Any()).
					Return(errors.New("transaction failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Book(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	customers := []model.Customer{
		{ID: "customer-1", Name: "John Doe", Phone: "08123456789", RoomNo: 101, CheckinDate: timezone.Now(), RoomType: "Deluxe", Price: 1500},
		{ID: "customer-2", Name: "Jane Doe", Phone: "08123456780", RoomNo: 102, CheckinDate: timezone.Now(), RoomType: "Standard", Price: 800},
	}

	req := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss fetches from repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), req, gomock.Any()).
			Return(customers, nil)

		res, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Customers, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), req, gomock.Any()).
			Return(nil, errors.New("query failed"))

		_, err := svc.GetAll(context.Background(), req, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
