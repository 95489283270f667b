package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lessonlab/backend/internal/apperr"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/repository"
	"github.com/lessonlab/backend/internal/validation"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LessonService interface {
	GetAllLessons() ([]dto.LessonSummaryDTO, error)
	GetLesson(id uint) (*dto.LessonDetailDTO, error)
	RecordView(lessonID, studentID uint) (*dto.ViewResultDTO, error)
	CreateLesson(req dto.LessonCreateDTO) (*dto.LessonDetailDTO, error)
}

type lessonService struct {
	lessonRepo repository.LessonRepository
	taskRepo   repository.TaskRepository
	viewRepo   repository.ViewRepository
}

func NewLessonService(
	lessonRepo repository.LessonRepository,
	taskRepo repository.TaskRepository,
	viewRepo repository.ViewRepository,
) LessonService {
	return &lessonService{lessonRepo: lessonRepo, taskRepo: taskRepo, viewRepo: viewRepo}
}

func (s *lessonService) GetAllLessons() ([]dto.LessonSummaryDTO, error) {
	lessons, err := s.lessonRepo.FindAllWithStats()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch lessons with stats")
		return nil, fmt.Errorf("fetching lessons: %w", err)
	}

	summaries := make([]dto.LessonSummaryDTO, 0, len(lessons))
	for _, l := range lessons {
		summaries = append(summaries, dto.LessonSummaryDTO{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			VideoURL:    l.VideoURL,
			TeacherID:   l.TeacherID,
			TeacherName: l.TeacherName,
			PublishedAt: l.PublishedAt,
			ViewedCount: l.ViewedCount,
			QuizCount:   l.QuizCount,
		})
	}
	return summaries, nil
}

// GetLesson returns the lesson with its questions and tasks in the
// student-facing shape; question DTOs never carry the correct option.
func (s *lessonService) GetLesson(id uint) (*dto.LessonDetailDTO, error) {
	lesson, err := s.lessonRepo.FindByIDWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("lesson", id)
		}
		return nil, fmt.Errorf("fetching lesson %d: %w", id, err)
	}
	tasks, err := s.taskRepo.FindByLessonID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks for lesson %d: %w", id, err)
	}
	return toLessonDetailDTO(lesson, tasks), nil
}

func (s *lessonService) RecordView(lessonID, studentID uint) (*dto.ViewResultDTO, error) {
	if err := validation.ValidateLessonID(lessonID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStudentID(studentID); err != nil {
		return nil, err
	}

	view := model.LessonView{
		LessonID:  lessonID,
		StudentID: studentID,
		ViewedAt:  time.Now(),
	}
	if err := s.viewRepo.Create(&view); err != nil {
		return nil, fmt.Errorf("recording view for lesson %d: %w", lessonID, err)
	}
	return &dto.ViewResultDTO{ID: view.ID}, nil
}

// CreateLesson publishes a lesson together with its quiz questions and
// tasks in a single associated create.
func (s *lessonService) CreateLesson(req dto.LessonCreateDTO) (*dto.LessonDetailDTO, error) {
	err := validation.ValidateLessonInput(validation.LessonInput{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		TeacherID:   req.TeacherID,
	})
	if err != nil {
		return nil, err
	}

	lesson := model.Lesson{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		TeacherID:   req.TeacherID,
		PublishedAt: time.Now(),
	}
	for _, q := range req.Questions {
		var question model.QuizQuestion
		if err := copier.Copy(&question, &q); err != nil {
			return nil, fmt.Errorf("copying question input: %w", err)
		}
		lesson.Questions = append(lesson.Questions, question)
	}
	for _, t := range req.Tasks {
		lesson.Tasks = append(lesson.Tasks, model.LessonTask{TaskText: t.TaskText})
	}

	if err := s.lessonRepo.Create(&lesson); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create lesson")
		return nil, fmt.Errorf("creating lesson: %w", err)
	}

	created, err := s.lessonRepo.FindByIDWithRelations(lesson.ID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lesson.ID).Msg("Failed to reload created lesson")
		return toLessonDetailDTO(&lesson, lesson.Tasks), nil
	}
	tasks, err := s.taskRepo.FindByLessonID(lesson.ID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lesson.ID).Msg("Failed to reload created lesson tasks")
		tasks = lesson.Tasks
	}
	return toLessonDetailDTO(created, tasks), nil
}

func toLessonDetailDTO(lesson *model.Lesson, tasks []model.LessonTask) *dto.LessonDetailDTO {
	detail := &dto.LessonDetailDTO{
		Lesson: dto.LessonDTO{
			ID:          lesson.ID,
			Title:       lesson.Title,
			Description: lesson.Description,
			VideoURL:    lesson.VideoURL,
			TeacherID:   lesson.TeacherID,
			PublishedAt: lesson.PublishedAt,
		},
		Questions: make([]dto.QuestionDTO, 0, len(lesson.Questions)),
		Tasks:     make([]dto.TaskDTO, 0, len(tasks)),
	}
	if lesson.Teacher != nil {
		name := lesson.Teacher.Name
		detail.Lesson.TeacherName = &name
	}
	for _, q := range lesson.Questions {
		detail.Questions = append(detail.Questions, dto.QuestionDTO{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		})
	}
	for _, t := range tasks {
		detail.Tasks = append(detail.Tasks, dto.TaskDTO{ID: t.ID, TaskText: t.TaskText})
	}
	return detail
}
