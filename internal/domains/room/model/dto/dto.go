package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNo   int    `json:"room_no"   validate:"required,gt=0"`
	RoomType string `json:"room_type" validate:"required,max=100"`
	Price    int    `json:"price"     validate:"gte=0"`
}

// ToModel builds the room record. New rooms always start Available;
// only a booking moves them to Booked.
func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		RoomNo:   c.RoomNo,
		RoomType: c.RoomType,
		Price:    c.Price,
		Status:   model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	RoomNo   int    `json:"room_no"`
	RoomType string `json:"room_type"`
	Price    int    `json:"price"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNo = model.RoomNo
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type RoomsSummary struct {
	TotalRooms int `json:"total_rooms"`
	Available  int `json:"available"`
	Booked     int `json:"booked"`
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	Summary   RoomsSummary   `json:"summary"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, summary RoomsSummary, totalData, limit int) {
	r.Summary = summary
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
