package models

import "time"

type Student struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:120;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Hostel   string `json:"hostel" gorm:"size:60;not null"`
	Year     string `json:"year" gorm:"size:10;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the student shape returned to clients (never the hash).
type Profile struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Hostel string `json:"hostel"`
	Year   string `json:"year"`
}

func (s *Student) Profile() Profile {
	return Profile{ID: s.ID, Name: s.Name, Email: s.Email, Hostel: s.Hostel, Year: s.Year}
}
