package settings

import "time"

type Setting struct {
	Key       string `gorm:"type:varchar(120);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
