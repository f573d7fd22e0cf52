package models

// ClientMatch is one row of the clients/phones join returned by a search.
type ClientMatch struct {
	ClientID  uint   `gorm:"column:client_id" json:"client_id"`
	FirstName string `gorm:"column:fname" json:"first_name"`
	LastName  string `gorm:"column:lname" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
	PhoneID   uint   `gorm:"column:phone_id" json:"phone_id"`
	Number    string `gorm:"column:number" json:"number"`
}
