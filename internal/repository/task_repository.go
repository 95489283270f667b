package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type TaskRepository interface {
	FindByLessonID(lessonID uint) ([]model.LessonTask, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) FindByLessonID(lessonID uint) ([]model.LessonTask, error) {
	var tasks []model.LessonTask
	if err := r.db.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
