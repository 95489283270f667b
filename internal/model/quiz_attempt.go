package model

import "time"

// QuizAttempt records a student's single allowed quiz submission for a lesson.
// The composite unique index makes the storage layer enforce the
// one-attempt-per-student-per-lesson invariant; the service translates the
// resulting conflict into a duplicate-submission error.
type QuizAttempt struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	LessonID    uint         `json:"lesson_id" gorm:"not null;uniqueIndex:idx_quiz_attempts_lesson_student"`
	StudentID   uint         `json:"student_id" gorm:"not null;uniqueIndex:idx_quiz_attempts_lesson_student"`
	Student     Student      `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	SubmittedAt time.Time    `json:"submitted_at"`
	Score       int          `json:"score" gorm:"not null"`
	Answers     []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
