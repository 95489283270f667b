package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindAll() ([]model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	if err := r.db.Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
