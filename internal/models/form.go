package models

import "time"

// Form is a submitted contact/request record. Content fields are nullable;
// a nil field was never supplied.
type Form struct {
	ID        string    `json:"_id" gorm:"type:uuid;primaryKey"`
	Email     *string   `json:"email,omitempty"`
	Phone     *int64    `json:"phone,omitempty"`
	Title     *string   `json:"title,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
