package dto

type Bill struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"-"`
}

type BillDetails struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	RoomNo       int    `json:"room_no"`
	RoomType     string `json:"room_type"`
	CheckinDate  string `json:"checkin_date"`
	TotalAmount  int    `json:"total_amount"`
}
