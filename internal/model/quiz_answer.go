package model

import "time"

// QuizAnswer is created in bulk alongside its QuizAttempt, one row per
// question in the lesson. Answer is the empty string when the student
// skipped the question.
type QuizAnswer struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	AttemptID  uint         `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint         `json:"question_id" gorm:"not null;index"`
	Question   QuizQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer     string       `json:"answer" gorm:"type:varchar(1)"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
