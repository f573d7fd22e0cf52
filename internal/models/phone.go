package models

type Phone struct {
	ID       uint   `gorm:"column:phone_id;primaryKey" json:"phone_id"`
	ClientID uint   `gorm:"column:client_id;not null;index" json:"client_id"`
	Number   string `gorm:"column:number;type:text;not null" json:"number"`
}

func (Phone) TableName() string {
	return "phones"
}
