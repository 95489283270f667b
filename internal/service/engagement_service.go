package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EngagementService computes per-student submission state and the
// per-lesson engagement rollup for teacher review. Pure reads.
type EngagementService interface {
	GetStatus(lessonID, studentID uint) (*dto.StatusDTO, error)
	GetAttempts(lessonID uint) ([]dto.AttemptReviewDTO, error)
	GetSubmissions(lessonID uint) ([]dto.SubmissionReviewDTO, error)
	GetEngagement(lessonID uint) ([]dto.EngagementRowDTO, error)
}

type engagementService struct {
	studentRepo    repository.StudentRepository
	attemptRepo    repository.AttemptRepository
	submissionRepo repository.SubmissionRepository
	viewRepo       repository.ViewRepository
}

func NewEngagementService(
	studentRepo repository.StudentRepository,
	attemptRepo repository.AttemptRepository,
	submissionRepo repository.SubmissionRepository,
	viewRepo repository.ViewRepository,
) EngagementService {
	return &engagementService{
		studentRepo:    studentRepo,
		attemptRepo:    attemptRepo,
		submissionRepo: submissionRepo,
		viewRepo:       viewRepo,
	}
}

// GetStatus reports whether the student has submitted the lesson's quiz and
// any of its tasks. A lesson with several tasks yields at most one task
// submission here, the first found.
func (s *engagementService) GetStatus(lessonID, studentID uint) (*dto.StatusDTO, error) {
	status := &dto.StatusDTO{}

	attempt, err := s.attemptRepo.FindByLessonAndStudent(lessonID, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("fetching quiz status for lesson %d: %w", lessonID, err)
	}
	if attempt != nil {
		status.Quiz = toAttemptDTO(*attempt)
	}

	submission, err := s.submissionRepo.FindFirstByLessonAndStudent(lessonID, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("fetching task status for lesson %d: %w", lessonID, err)
	}
	if submission != nil {
		status.Task = toSubmissionDTO(*submission)
	}

	return status, nil
}

// GetAttempts returns every quiz attempt for the lesson, denormalized with
// the student name and full per-question answer detail including the
// correct option, so a teacher can regrade by hand.
func (s *engagementService) GetAttempts(lessonID uint) ([]dto.AttemptReviewDTO, error) {
	attempts, err := s.attemptRepo.FindAllByLessonWithDetails(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts for lesson %d: %w", lessonID, err)
	}

	reviews := make([]dto.AttemptReviewDTO, 0, len(attempts))
	for _, attempt := range attempts {
		review := dto.AttemptReviewDTO{
			ID:          attempt.ID,
			LessonID:    attempt.LessonID,
			StudentID:   attempt.StudentID,
			SubmittedAt: attempt.SubmittedAt,
			Score:       attempt.Score,
			Answers:     make([]dto.AnswerReviewDTO, 0, len(attempt.Answers)),
		}
		if attempt.Student.ID != 0 {
			name := attempt.Student.Name
			review.StudentName = &name
		}
		for _, answer := range attempt.Answers {
			review.Answers = append(review.Answers, dto.AnswerReviewDTO{
				ID:            answer.ID,
				QuestionID:    answer.QuestionID,
				Answer:        answer.Answer,
				QuestionText:  answer.Question.QuestionText,
				OptionA:       answer.Question.OptionA,
				OptionB:       answer.Question.OptionB,
				OptionC:       answer.Question.OptionC,
				OptionD:       answer.Question.OptionD,
				CorrectOption: answer.Question.CorrectOption,
			})
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// GetSubmissions returns every task submission for the lesson's tasks.
func (s *engagementService) GetSubmissions(lessonID uint) ([]dto.SubmissionReviewDTO, error) {
	submissions, err := s.submissionRepo.FindAllByLessonWithStudent(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions for lesson %d: %w", lessonID, err)
	}

	reviews := make([]dto.SubmissionReviewDTO, 0, len(submissions))
	for _, submission := range submissions {
		var review dto.SubmissionReviewDTO
		if err := copier.Copy(&review, &submission); err != nil {
			log.Error().Err(err).Uint("submissionID", submission.ID).Msg("GetSubmissions: copy to DTO failed")
			continue
		}
		review.StudentName = nil
		if submission.Student.ID != 0 {
			name := submission.Student.Name
			review.StudentName = &name
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// GetEngagement builds one row per student in the system, whether or not
// the student interacted with the lesson. The three record kinds are each
// fetched once and mapped by student id; the result is identical to
// per-student lookups.
func (s *engagementService) GetEngagement(lessonID uint) ([]dto.EngagementRowDTO, error) {
	students, err := s.studentRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetching students: %w", err)
	}
	views, err := s.viewRepo.FindAllByLesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching views for lesson %d: %w", lessonID, err)
	}
	attempts, err := s.attemptRepo.FindAllByLesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts for lesson %d: %w", lessonID, err)
	}
	submissions, err := s.submissionRepo.FindAllByLesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions for lesson %d: %w", lessonID, err)
	}

	viewed := make(map[uint]bool, len(views))
	for _, v := range views {
		viewed[v.StudentID] = true
	}
	attemptBy := make(map[uint]model.QuizAttempt, len(attempts))
	for _, a := range attempts {
		if _, ok := attemptBy[a.StudentID]; !ok {
			attemptBy[a.StudentID] = a
		}
	}
	submissionBy := make(map[uint]model.TaskSubmission, len(submissions))
	for _, sub := range submissions {
		if _, ok := submissionBy[sub.StudentID]; !ok {
			submissionBy[sub.StudentID] = sub
		}
	}

	rows := make([]dto.EngagementRowDTO, 0, len(students))
	for _, student := range students {
		row := dto.EngagementRowDTO{
			Student: dto.StudentDTO{ID: student.ID, Name: student.Name, Email: student.Email},
			Viewed:  viewed[student.ID],
		}
		if attempt, ok := attemptBy[student.ID]; ok {
			row.Quiz = toAttemptDTO(attempt)
		}
		if submission, ok := submissionBy[student.ID]; ok {
			row.Task = toSubmissionDTO(submission)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toAttemptDTO(attempt model.QuizAttempt) *dto.QuizAttemptDTO {
	return &dto.QuizAttemptDTO{
		ID:          attempt.ID,
		LessonID:    attempt.LessonID,
		StudentID:   attempt.StudentID,
		SubmittedAt: attempt.SubmittedAt,
		Score:       attempt.Score,
	}
}

func toSubmissionDTO(submission model.TaskSubmission) *dto.TaskSubmissionDTO {
	return &dto.TaskSubmissionDTO{
		ID:          submission.ID,
		TaskID:      submission.TaskID,
		StudentID:   submission.StudentID,
		SubmittedAt: submission.SubmittedAt,
		Content:     submission.Content,
		Mark:        submission.Mark,
	}
}
