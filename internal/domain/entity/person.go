package entity

import "time"

// Gender of a person record.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Person holds the fields shared by admins, doctors and patients.
type Person struct {
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Gender      Gender    `gorm:"type:varchar(10);not null" json:"gender"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`
}

// FullName joins first and last name.
func (p Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
