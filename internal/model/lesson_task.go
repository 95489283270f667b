package model

import "time"

type LessonTask struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LessonID  uint      `json:"lesson_id" gorm:"not null;index"`
	TaskText  string    `json:"task_text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
