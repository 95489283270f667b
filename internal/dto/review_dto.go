package dto

import "time"

// QuizAttemptDTO is the plain attempt shape used in status and engagement
// responses.
type QuizAttemptDTO struct {
	ID          uint      `json:"id"`
	LessonID    uint      `json:"lesson_id"`
	StudentID   uint      `json:"student_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       int       `json:"score"`
}

type TaskSubmissionDTO struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	StudentID   uint      `json:"student_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Content     string    `json:"content"`
	Mark        *int      `json:"mark"`
}

// StatusDTO reports a student's submission state for one lesson. Either
// field is null when nothing was submitted. When a lesson has more than one
// task, Task holds the first submission found for any of them.
type StatusDTO struct {
	Quiz *QuizAttemptDTO    `json:"quiz"`
	Task *TaskSubmissionDTO `json:"task"`
}

// AnswerReviewDTO exposes the ground truth a teacher needs for manual
// regrading, including the question's correct option.
type AnswerReviewDTO struct {
	ID            uint   `json:"id"`
	QuestionID    uint   `json:"question_id"`
	Answer        string `json:"answer"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

type AttemptReviewDTO struct {
	ID          uint              `json:"id"`
	LessonID    uint              `json:"lesson_id"`
	StudentID   uint              `json:"student_id"`
	StudentName *string           `json:"student_name"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Score       int               `json:"score"`
	Answers     []AnswerReviewDTO `json:"answers"`
}

type SubmissionReviewDTO struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	StudentID   uint      `json:"student_id"`
	StudentName *string   `json:"student_name"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
	Mark        *int      `json:"mark"`
}

// EngagementRowDTO is one row of the per-lesson engagement rollup. Every
// student in the system gets a row, whether or not they interacted with
// the lesson.
type EngagementRowDTO struct {
	Student StudentDTO         `json:"student"`
	Viewed  bool               `json:"viewed"`
	Quiz    *QuizAttemptDTO    `json:"quiz"`
	Task    *TaskSubmissionDTO `json:"task"`
}
