package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type ViewRepository interface {
	Create(view *model.LessonView) error
	FindAllByLesson(lessonID uint) ([]model.LessonView, error)
}

type viewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository {
	return &viewRepository{db: db}
}

func (r *viewRepository) Create(view *model.LessonView) error {
	return r.db.Create(view).Error
}

func (r *viewRepository) FindAllByLesson(lessonID uint) ([]model.LessonView, error) {
	var views []model.LessonView
	err := r.db.Where("lesson_id = ?", lessonID).Find(&views).Error
	return views, err
}
