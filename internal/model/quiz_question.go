package model

import "time"

type QuizQuestion struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	LessonID      uint      `json:"lesson_id" gorm:"not null;index"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"not null"`
	OptionB       string    `json:"option_b" gorm:"not null"`
	OptionC       string    `json:"option_c" gorm:"not null"`
	OptionD       string    `json:"option_d" gorm:"not null"`
	CorrectOption string    `json:"correct_option" gorm:"type:varchar(1);not null"` // "a", "b", "c" or "d"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
