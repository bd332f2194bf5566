package db_models

type Course struct {
	BaseModel
	Title       string `gorm:"uniqueIndex;not null" json:"title"`
	Code        string `gorm:"uniqueIndex;not null" json:"code"`
	Description string `json:"description"`
}
