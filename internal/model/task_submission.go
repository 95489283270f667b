package model

import "time"

// TaskSubmission records a student's single allowed free-text submission for
// a lesson task. Mark stays nil until a teacher grades it.
type TaskSubmission struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	TaskID      uint       `json:"task_id" gorm:"not null;uniqueIndex:idx_task_submissions_task_student"`
	StudentID   uint       `json:"student_id" gorm:"not null;uniqueIndex:idx_task_submissions_task_student"`
	Student     Student    `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Task        LessonTask `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	SubmittedAt time.Time  `json:"submitted_at"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	Mark        *int       `json:"mark,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
