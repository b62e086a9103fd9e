package models

import "time"

type ErrorLog struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Traceback string    `gorm:"column:traceback;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (ErrorLog) TableName() string { return "error_logs" }
