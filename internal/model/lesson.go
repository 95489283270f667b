package model

import "time"

type Lesson struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	VideoURL    *string        `json:"video_url,omitempty"`
	TeacherID   *uint          `json:"teacher_id,omitempty" gorm:"index"`
	Teacher     *Teacher       `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	PublishedAt time.Time      `json:"published_at" gorm:"autoCreateTime"`
	Questions   []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:LessonID"`
	Tasks       []LessonTask   `json:"tasks,omitempty" gorm:"foreignKey:LessonID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
