package repository

import (
	"github.com/lessonlab/backend/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.TaskSubmission) error
	FindByTaskAndStudent(taskID, studentID uint) (*model.TaskSubmission, error)
	FindFirstByLessonAndStudent(lessonID, studentID uint) (*model.TaskSubmission, error)
	FindAllByLesson(lessonID uint) ([]model.TaskSubmission, error)
	FindAllByLessonWithStudent(lessonID uint) ([]model.TaskSubmission, error)
	UpdateMark(id uint, mark int) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.TaskSubmission) error {
	// Conflicts on the (task_id, student_id) unique index come back as
	// gorm.ErrDuplicatedKey.
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByTaskAndStudent(taskID, studentID uint) (*model.TaskSubmission, error) {
	var submission model.TaskSubmission
	err := r.db.Where("task_id = ? AND student_id = ?", taskID, studentID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindFirstByLessonAndStudent returns the student's submission for any task
// belonging to the lesson, at most one, the first found.
func (r *submissionRepository) FindFirstByLessonAndStudent(lessonID, studentID uint) (*model.TaskSubmission, error) {
	var submission model.TaskSubmission
	err := r.db.
		Joins("JOIN lesson_tasks ON lesson_tasks.id = task_submissions.task_id").
		Where("lesson_tasks.lesson_id = ? AND task_submissions.student_id = ?", lessonID, studentID).
		Order("task_submissions.id ASC").
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByLesson(lessonID uint) ([]model.TaskSubmission, error) {
	var submissions []model.TaskSubmission
	err := r.db.
		Joins("JOIN lesson_tasks ON lesson_tasks.id = task_submissions.task_id").
		Where("lesson_tasks.lesson_id = ?", lessonID).
		Order("task_submissions.id ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindAllByLessonWithStudent(lessonID uint) ([]model.TaskSubmission, error) {
	var submissions []model.TaskSubmission
	err := r.db.
		Preload("Student").
		Preload("Task").
		Joins("JOIN lesson_tasks ON lesson_tasks.id = task_submissions.task_id").
		Where("lesson_tasks.lesson_id = ?", lessonID).
		Order("task_submissions.submitted_at ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) UpdateMark(id uint, mark int) (int64, error) {
	res := r.db.Model(&model.TaskSubmission{}).Where("id = ?", id).Update("mark", mark)
	return res.RowsAffected, res.Error
}
