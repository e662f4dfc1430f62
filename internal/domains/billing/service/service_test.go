package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	"frontdesk/internal/domains/billing/service"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	"frontdesk/shared/timezone"
)

func TestBillingService_GenerateBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Billing.OutputDir = t.TempDir()
	cfg.Billing.HotelTitle = "Hotel Bill"

	svc := service.New(mockCustomerRepo, cfg, mockOtel, mockS3)

	// Archiving to S3 happens asynchronously after the bill is written
	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil).
		AnyTimes()

	occupant := customerModel.Customer{
		ID:          "customer-1",
		Name:        "John Doe",
		Phone:       "08123456789",
		RoomNo:      101,
		CheckinDate: timezone.Now(),
		RoomType:    "Deluxe",
		Price:       1500,
	}

	tests := []struct {
		name      string
		roomNo    int
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "bill generated for occupied room",
			roomNo: 101,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupant, nil)
			},
			wantErr: false,
		},
		{
			name:   "no booking for room",
			roomNo: 999,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name:   "repository error",
			roomNo: 101,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			bill, err := svc.GenerateBill(context.Background(), tt.roomNo)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "bill_room_101.pdf", bill.FileName)
			assert.NotEmpty(t, bill.Content)

			// PDF files start with the %PDF magic bytes
			assert.Equal(t, "%PDF", string(bill.Content[:4]))

			written, err := os.ReadFile(filepath.Join(cfg.Billing.OutputDir, bill.FileName))
			assert.NoError(t, err)
			assert.Equal(t, bill.Content, written)
		})
	}
}
