package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldRoomNo      = "room_no"
	FieldCheckinDate = "checkin_date"
)

type Customer struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Phone       string    `db:"phone"`
	RoomNo      int       `db:"room_no"`
	CheckinDate time.Time `db:"checkin_date"`
	RoomType    string    `db:"room_type" table:"rooms"`
	Price       int       `db:"price"     table:"rooms"`
	model.Metadata
}

func (Customer) GetJoinQuery() string {
	return "JOIN rooms ON rooms.room_no = customers.room_no"
}
