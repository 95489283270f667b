package model

import "time"

// LessonView is append-only; a student may view a lesson any number of
// times and only the existence of at least one row matters downstream.
type LessonView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LessonID  uint      `json:"lesson_id" gorm:"not null;index"`
	StudentID uint      `json:"student_id" gorm:"not null;index"`
	ViewedAt  time.Time `json:"viewed_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
