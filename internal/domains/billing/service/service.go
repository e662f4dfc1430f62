package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/billing/model/dto"
	customerModel "frontdesk/internal/domains/customer/model"
	customerRepo "frontdesk/internal/domains/customer/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
)

const (
	s3BillDirectory = "bills"

	outputDirPerm = 0o755
	billFilePerm  = 0o644
)

type Billing interface {
	GenerateBill(ctx context.Context, roomNo int) (dto.Bill, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	cfg          *config.Config
	otel         otel.Otel
	s3           s3.S3
}

func New(customerRepo customerRepo.Customer, cfg *config.Config, otel otel.Otel, s3 s3.S3) Billing {
	return &serviceImpl{
		customerRepo: customerRepo,
		cfg:          cfg,
		otel:         otel,
		s3:           s3,
	}
}

// GenerateBill renders a PDF bill for the current occupant of the room. The
// file is persisted locally for the front desk and archived to S3 best effort.
func (s *serviceImpl) GenerateBill(ctx context.Context, roomNo int) (res dto.Bill, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(roomNo, customerModel.FieldRoomNo, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Int("room_no", roomNo).Msg("failed to get customer for bill")

		return res, fmt.Errorf("failed to get customer for bill: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("no booking found for this room") //nolint:wrapcheck
	}

	details := dto.BillDetails{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		RoomNo:       customer.RoomNo,
		RoomType:     customer.RoomType,
		CheckinDate:  timezone.Format(customer.CheckinDate, constant.CheckinDateFormat),
		TotalAmount:  customer.Price,
	}

	content, err := s.renderPDF(details)
	if err != nil {
		log.Error().Err(err).Int("room_no", roomNo).Msg("failed to render bill")

		return res, fmt.Errorf("failed to render bill: %w", err)
	}

	fileName := fmt.Sprintf("bill_room_%d.pdf", roomNo)

	if err = s.writeBillFile(fileName, content); err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to write bill file")

		return res, fmt.Errorf("failed to write bill file: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName
		if _, err := s.s3.UploadFileBytes(c, bucketName, s3BillDirectory, fileName, constant.ContentTypePDF, content); err != nil {
			log.Error().Err(err).Str("file", fileName).Msg("failed to archive bill to S3")
		}
	}()

	res.FileName = fileName
	res.Content = content

	return res, nil
}

func (s *serviceImpl) renderPDF(details dto.BillDetails) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, s.cfg.Billing.HotelTitle)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Customer: %s", details.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", details.Phone))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Room: %d (%s)", details.RoomNo, details.RoomType))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Check-in Date: %s", details.CheckinDate))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Amount: %d", details.TotalAmount))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) writeBillFile(fileName string, content []byte) error {
	outputDir := s.cfg.Billing.OutputDir

	if err := os.MkdirAll(outputDir, outputDirPerm); err != nil {
		return fmt.Errorf("failed to create bill output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, fileName), content, billFilePerm); err != nil {
		return fmt.Errorf("failed to write bill: %w", err)
	}

	return nil
}
