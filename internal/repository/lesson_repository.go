package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

// LessonWithStats augments a lesson row with the denormalized fields the
// lesson listing needs.
type LessonWithStats struct {
	model.Lesson
	TeacherName *string
	ViewedCount int
	QuizCount   int
}

type LessonRepository interface {
	Create(lesson *model.Lesson) error
	FindByIDWithRelations(id uint) (*model.Lesson, error)
	FindAllWithStats() ([]LessonWithStats, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(lesson *model.Lesson) error {
	// GORM creates the associated questions and tasks in the same
	// transaction when lesson.Questions / lesson.Tasks are populated.
	return r.db.Create(lesson).Error
}

// FindByIDWithRelations loads the lesson with its teacher and questions.
// Tasks are fetched separately through TaskRepository.
func (r *lessonRepository) FindByIDWithRelations(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.
		Preload("Teacher").
		Preload("Questions").
		First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) FindAllWithStats() ([]LessonWithStats, error) {
	var results []LessonWithStats
	err := r.db.Model(&model.Lesson{}).
		Select(`lessons.*,
			teachers.name AS teacher_name,
			(SELECT COUNT(*) FROM lesson_views WHERE lesson_views.lesson_id = lessons.id) AS viewed_count,
			(SELECT COUNT(*) FROM quiz_attempts WHERE quiz_attempts.lesson_id = lessons.id) AS quiz_count`).
		Joins("LEFT JOIN teachers ON teachers.id = lessons.teacher_id").
		Order("lessons.published_at DESC").
		Scan(&results).Error
	return results, err
}
