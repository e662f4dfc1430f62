package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNo   = "room_no"
	FieldRoomType = "room_type"
	FieldPrice    = "price"
	FieldStatus   = "status"
)

const (
	StatusAvailable = "Available"
	StatusBooked    = "Booked"
)

type Room struct {
	RoomNo   int    `db:"room_no"`
	RoomType string `db:"room_type"`
	Price    int    `db:"price"`
	Status   string `db:"status"`
	model.Metadata
}
