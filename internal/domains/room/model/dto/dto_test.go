package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/validator"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNo:   101,
		RoomType: "Deluxe",
		Price:    1500,
	}

	room := req.ToModel("admin")

	assert.Equal(t, req.RoomNo, room.RoomNo)
	assert.Equal(t, req.RoomType, room.RoomType)
	assert.Equal(t, req.Price, room.Price)
	assert.Equal(t, model.StatusAvailable, room.Status)
	assert.Equal(t, "admin", room.CreatedBy)
}

func TestCreateRoomRequest_StatusCannotBeSetByCaller(t *testing.T) {
	body := `{"room_no": 102, "room_type": "Standard", "price": 800, "status": "Booked"}`

	var req dto.CreateRoomRequest
	err := validator.Validate(strings.NewReader(body), &req)
	assert.NoError(t, err)

	room := req.ToModel("admin")

	assert.Equal(t, model.StatusAvailable, room.Status)
}

func TestCreateRoomRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     dto.CreateRoomRequest{RoomNo: 101, RoomType: "Deluxe", Price: 1500},
			wantErr: false,
		},
		{
			name:    "free room is allowed",
			req:     dto.CreateRoomRequest{RoomNo: 101, RoomType: "Standard", Price: 0},
			wantErr: false,
		},
		{
			name:    "negative price",
			req:     dto.CreateRoomRequest{RoomNo: 101, RoomType: "Standard", Price: -1},
			wantErr: true,
		},
		{
			name:    "missing room number",
			req:     dto.CreateRoomRequest{RoomType: "Standard", Price: 800},
			wantErr: true,
		},
		{
			name:    "missing room type",
			req:     dto.CreateRoomRequest{RoomNo: 101, Price: 800},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{RoomNo: 101, RoomType: "Deluxe", Price: 1500, Status: model.StatusAvailable},
		{RoomNo: 102, RoomType: "Standard", Price: 800, Status: model.StatusBooked},
	}

	summary := dto.RoomsSummary{TotalRooms: 2, Available: 1, Booked: 1}

	var res dto.GetRoomsResponse
	res.FromModels(rooms, summary, 2, 10)

	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, summary, res.Summary)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Equal(t, 101, res.Rooms[0].RoomNo)
}
