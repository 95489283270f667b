package dto

// SubmitQuizDTO carries a student's answers for an entire lesson quiz.
// Answers maps question id (decimal string, as JSON object keys arrive) to
// the chosen option letter. Keys are validated against the lesson's
// question set before scoring.
type SubmitQuizDTO struct {
	LessonID  uint              `json:"lesson_id" binding:"required"`
	StudentID uint              `json:"student_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
}

// QuizResultDTO is returned on a successful quiz submission.
type QuizResultDTO struct {
	ID    uint `json:"id"`
	Score int  `json:"score"`
}

type SubmitTaskDTO struct {
	TaskID    uint   `json:"task_id" binding:"required"`
	StudentID uint   `json:"student_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type TaskResultDTO struct {
	ID uint `json:"id"`
}

type RecordViewDTO struct {
	LessonID  uint `json:"lesson_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
}

type ViewResultDTO struct {
	ID uint `json:"id"`
}

// MarkTaskDTO / MarkQuizDTO are the teacher override operations. Pointer
// fields so a zero mark is distinguishable from an absent one.
type MarkTaskDTO struct {
	SubmissionID uint `json:"submission_id" binding:"required"`
	Mark         *int `json:"mark" binding:"required"`
}

type MarkQuizDTO struct {
	AttemptID uint `json:"attempt_id" binding:"required"`
	Score     *int `json:"score" binding:"required"`
}

// ChangesDTO reports how many records an override touched (always 1 on
// success; a missing id is a 404, never a silent zero).
type ChangesDTO struct {
	Changes int64 `json:"changes"`
}
