package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lessonlab/backend/internal/apperr"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/repository"
	"github.com/lessonlab/backend/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService enforces one-submission-per-student-per-item, computes
// quiz scores and applies teacher mark overrides.
type SubmissionService interface {
	SubmitQuiz(lessonID, studentID uint, answers map[string]string) (*dto.QuizResultDTO, error)
	SubmitTask(taskID, studentID uint, content string) (*dto.TaskResultDTO, error)
	MarkQuiz(attemptID uint, score int) (int64, error)
	MarkTask(submissionID uint, mark int) (int64, error)
}

type submissionService struct {
	questionRepo   repository.QuestionRepository
	attemptRepo    repository.AttemptRepository
	submissionRepo repository.SubmissionRepository
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	submissionRepo repository.SubmissionRepository,
) SubmissionService {
	return &submissionService{
		questionRepo:   questionRepo,
		attemptRepo:    attemptRepo,
		submissionRepo: submissionRepo,
	}
}

// SubmitQuiz scores the given answers against the lesson's questions and
// records the attempt with one answer row per question, answered or not.
// The duplicate check is backed by the unique index on
// (lesson_id, student_id), so two racing submissions cannot both land.
func (s *submissionService) SubmitQuiz(lessonID, studentID uint, answers map[string]string) (*dto.QuizResultDTO, error) {
	if err := validation.ValidateLessonID(lessonID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStudentID(studentID); err != nil {
		return nil, err
	}

	_, err := s.attemptRepo.FindByLessonAndStudent(lessonID, studentID)
	if err == nil {
		return nil, apperr.ErrQuizAlreadySubmitted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing attempt for lesson %d: %w", lessonID, err)
	}

	questions, err := s.questionRepo.FindByLessonID(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for lesson %d: %w", lessonID, err)
	}

	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	given, err := validation.ValidateQuizAnswers(answers, questionIDs)
	if err != nil {
		return nil, err
	}

	attempt := model.QuizAttempt{
		LessonID:    lessonID,
		StudentID:   studentID,
		SubmittedAt: time.Now(),
	}
	score := 0
	for _, q := range questions {
		// Exact string equality against the correct option; no case folding.
		answer := given[q.ID]
		if answer != "" && answer == q.CorrectOption {
			score++
		}
		attempt.Answers = append(attempt.Answers, model.QuizAnswer{
			QuestionID: q.ID,
			Answer:     answer,
		})
	}
	attempt.Score = score

	if err := s.attemptRepo.Create(&attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrQuizAlreadySubmitted
		}
		return nil, fmt.Errorf("creating quiz attempt for lesson %d: %w", lessonID, err)
	}

	log.Info().Uint("lessonID", lessonID).Uint("studentID", studentID).Int("score", score).
		Int("questions", len(questions)).Msg("Quiz attempt recorded")
	return &dto.QuizResultDTO{ID: attempt.ID, Score: score}, nil
}

// SubmitTask records a student's free-text submission, at most once per
// (task, student).
func (s *submissionService) SubmitTask(taskID, studentID uint, content string) (*dto.TaskResultDTO, error) {
	if err := validation.ValidateStudentID(studentID); err != nil {
		return nil, err
	}
	if err := validation.ValidateTaskSubmission(content); err != nil {
		return nil, err
	}

	_, err := s.submissionRepo.FindByTaskAndStudent(taskID, studentID)
	if err == nil {
		return nil, apperr.ErrTaskAlreadySubmitted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing submission for task %d: %w", taskID, err)
	}

	submission := model.TaskSubmission{
		TaskID:      taskID,
		StudentID:   studentID,
		SubmittedAt: time.Now(),
		Content:     content,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrTaskAlreadySubmitted
		}
		return nil, fmt.Errorf("creating task submission for task %d: %w", taskID, err)
	}

	log.Info().Uint("taskID", taskID).Uint("studentID", studentID).Msg("Task submission recorded")
	return &dto.TaskResultDTO{ID: submission.ID}, nil
}

// MarkQuiz overrides an attempt's score. The new score is validated against
// the lesson's question count, and a missing attempt id is a not-found
// error rather than a silent zero-row update.
func (s *submissionService) MarkQuiz(attemptID uint, score int) (int64, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NewNotFound("quiz attempt", attemptID)
		}
		return 0, fmt.Errorf("fetching attempt %d: %w", attemptID, err)
	}

	total, err := s.questionRepo.CountByLessonID(attempt.LessonID)
	if err != nil {
		return 0, fmt.Errorf("counting questions for lesson %d: %w", attempt.LessonID, err)
	}
	if err := validation.ValidateQuizMark(score, int(total)); err != nil {
		return 0, err
	}

	changed, err := s.attemptRepo.UpdateScore(attemptID, score)
	if err != nil {
		return 0, fmt.Errorf("updating score for attempt %d: %w", attemptID, err)
	}
	if changed == 0 {
		return 0, apperr.NewNotFound("quiz attempt", attemptID)
	}
	return changed, nil
}

// MarkTask sets the mark on a task submission.
func (s *submissionService) MarkTask(submissionID uint, mark int) (int64, error) {
	changed, err := s.submissionRepo.UpdateMark(submissionID, mark)
	if err != nil {
		return 0, fmt.Errorf("updating mark for submission %d: %w", submissionID, err)
	}
	if changed == 0 {
		return 0, apperr.NewNotFound("task submission", submissionID)
	}
	return changed, nil
}
