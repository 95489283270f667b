package dto

import "time"

// QuestionCreateDTO is used within LessonCreateDTO when a teacher publishes
// a lesson together with its quiz.
type QuestionCreateDTO struct {
	QuestionText  string `json:"question_text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required,oneof=a b c d"`
}

type TaskCreateDTO struct {
	TaskText string `json:"task_text" binding:"required"`
}

// LessonCreateDTO is for a teacher to publish a new lesson with its quiz
// questions and free-text tasks in one request.
type LessonCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description,omitempty"`
	VideoURL    *string             `json:"video_url,omitempty"`
	TeacherID   *uint               `json:"teacher_id,omitempty"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
	Tasks       []TaskCreateDTO     `json:"tasks" binding:"omitempty,dive"`
}

// LessonSummaryDTO is used for listing lessons, with per-lesson engagement
// counts for the teacher overview.
type LessonSummaryDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	TeacherID   *uint     `json:"teacher_id,omitempty"`
	TeacherName *string   `json:"teacher_name"`
	PublishedAt time.Time `json:"published_at"`
	ViewedCount int       `json:"viewed_count"`
	QuizCount   int       `json:"quiz_count"`
}

// QuestionDTO is the student-facing question shape. It deliberately omits
// the correct option.
type QuestionDTO struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

type TaskDTO struct {
	ID       uint   `json:"id"`
	TaskText string `json:"task_text"`
}

type LessonDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoURL    *string   `json:"video_url,omitempty"`
	TeacherID   *uint     `json:"teacher_id,omitempty"`
	TeacherName *string   `json:"teacher_name"`
	PublishedAt time.Time `json:"published_at"`
}

// LessonDetailDTO is everything a student needs to take a lesson.
type LessonDetailDTO struct {
	Lesson    LessonDTO     `json:"lesson"`
	Questions []QuestionDTO `json:"questions"`
	Tasks     []TaskDTO     `json:"tasks"`
}
