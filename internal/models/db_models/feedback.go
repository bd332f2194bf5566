package db_models

import "github.com/google/uuid"

type Feedback struct {
	BaseModel
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"studentId"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Course    Course    `gorm:"foreignKey:CourseID" json:"course"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Message   string    `gorm:"type:text" json:"message"`
}
