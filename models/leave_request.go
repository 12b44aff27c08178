package models

import (
	"strings"
	"time"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    uint      `json:"student_id" gorm:"index;not null"`
	FromDate     string    `json:"from_date" gorm:"size:10;not null"` // YYYY-MM-DD
	ToDate       string    `json:"to_date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Reason       string    `json:"reason" gorm:"type:text;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:pending"`
	AdminComment string    `json:"admin_comment" gorm:"type:text"`
	PDFPath      *string   `json:"pdf_path"` // nil until a certificate is generated
	AppliedAt    time.Time `json:"applied_at" gorm:"autoCreateTime"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayStatus renders a status value for humans ("pending" -> "Pending").
func DisplayStatus(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
