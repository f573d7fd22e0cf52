package models

// Client is a person record; its phone numbers live in the phones table.
type Client struct {
	ID uint `gorm:"column:client_id;primaryKey" json:"client_id"`

	FirstName string `gorm:"column:fname;type:text;not null" json:"first_name"`
	LastName  string `gorm:"column:lname;type:text;not null" json:"last_name"`
	Email     string `gorm:"column:email;type:text;not null" json:"email"`

	Phones []Phone `gorm:"foreignKey:ClientID;references:ID" json:"phones"`
}

func (Client) TableName() string {
	return "clients"
}
