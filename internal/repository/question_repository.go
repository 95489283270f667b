package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByLessonID(lessonID uint) ([]model.QuizQuestion, error)
	CountByLessonID(lessonID uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByLessonID(lessonID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByLessonID(lessonID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizQuestion{}).Where("lesson_id = ?", lessonID).Count(&count).Error
	return count, err
}
