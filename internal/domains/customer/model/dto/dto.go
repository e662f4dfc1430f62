package dto

import (
	"time"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type BookRoomRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Phone       string `json:"phone"        validate:"required,min=10,max=20"`
	RoomNo      int    `json:"room_no"      validate:"required,gt=0"`
	CheckinDate string `json:"checkin_date" validate:"omitempty"`
}

func (b *BookRoomRequest) ToModel(user string, checkinDate time.Time) model.Customer {
	return model.Customer{
		ID:          uuid.NewString(),
		Name:        b.Name,
		Phone:       b.Phone,
		RoomNo:      b.RoomNo,
		CheckinDate: checkinDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingCreatedEvent struct {
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	RoomNo      int    `json:"room_no"`
	CheckinDate string `json:"checkin_date"`
	BookedBy    string `json:"booked_by"`
}

func (e *BookingCreatedEvent) FromModel(model model.Customer) {
	e.CustomerID = model.ID
	e.Name = model.Name
	e.RoomNo = model.RoomNo
	e.CheckinDate = timezone.Format(model.CheckinDate, constant.CheckinDateFormat)
	e.BookedBy = model.CreatedBy
}

type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	RoomNo      int    `json:"room_no"`
	RoomType    string `json:"room_type"`
	Price       int    `json:"price"`
	CheckinDate string `json:"checkin_date"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(model model.Customer) {
	c.ID = model.ID
	c.Name = model.Name
	c.Phone = model.Phone
	c.RoomNo = model.RoomNo
	c.RoomType = model.RoomType
	c.Price = model.Price
	c.CheckinDate = timezone.Format(model.CheckinDate, constant.CheckinDateFormat)
	c.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
