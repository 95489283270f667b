package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByID(id uint) (*model.QuizAttempt, error)
	FindByLessonAndStudent(lessonID, studentID uint) (*model.QuizAttempt, error)
	FindAllByLesson(lessonID uint) ([]model.QuizAttempt, error)
	FindAllByLessonWithDetails(lessonID uint) ([]model.QuizAttempt, error)
	UpdateScore(id uint, score int) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	// Creates the attempt and its associated answers atomically; GORM wraps
	// the association insert in one transaction. A conflict on the
	// (lesson_id, student_id) unique index comes back as
	// gorm.ErrDuplicatedKey because the connection translates errors.
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByLessonAndStudent(lessonID, studentID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByLesson(lessonID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByLessonWithDetails(lessonID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Preload("Student").
		Preload("Answers.Question").
		Where("lesson_id = ?", lessonID).
		Order("submitted_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) UpdateScore(id uint, score int) (int64, error) {
	res := r.db.Model(&model.QuizAttempt{}).Where("id = ?", id).Update("score", score)
	return res.RowsAffected, res.Error
}
