package service

import (
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the storage contract the
// services rely on: gorm.ErrRecordNotFound on missing lookups and
// gorm.ErrDuplicatedKey on unique-index conflicts.

type fakeQuestionRepo struct {
	questions map[uint][]model.QuizQuestion // by lesson id
}

func (f *fakeQuestionRepo) FindByLessonID(lessonID uint) ([]model.QuizQuestion, error) {
	return f.questions[lessonID], nil
}

func (f *fakeQuestionRepo) CountByLessonID(lessonID uint) (int64, error) {
	return int64(len(f.questions[lessonID])), nil
}

type fakeAttemptRepo struct {
	attempts []model.QuizAttempt
	nextID   uint
}

func (f *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	for _, existing := range f.attempts {
		if existing.LessonID == attempt.LessonID && existing.StudentID == attempt.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	attempt.ID = f.nextID
	for i := range attempt.Answers {
		attempt.Answers[i].ID = uint(i + 1)
		attempt.Answers[i].AttemptID = attempt.ID
	}
	f.attempts = append(f.attempts, *attempt)
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.QuizAttempt, error) {
	for _, attempt := range f.attempts {
		if attempt.ID == id {
			found := attempt
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindByLessonAndStudent(lessonID, studentID uint) (*model.QuizAttempt, error) {
	for _, attempt := range f.attempts {
		if attempt.LessonID == lessonID && attempt.StudentID == studentID {
			found := attempt
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindAllByLesson(lessonID uint) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, attempt := range f.attempts {
		if attempt.LessonID == lessonID {
			out = append(out, attempt)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) FindAllByLessonWithDetails(lessonID uint) ([]model.QuizAttempt, error) {
	return f.FindAllByLesson(lessonID)
}

func (f *fakeAttemptRepo) UpdateScore(id uint, score int) (int64, error) {
	for i := range f.attempts {
		if f.attempts[i].ID == id {
			f.attempts[i].Score = score
			return 1, nil
		}
	}
	return 0, nil
}

type fakeSubmissionRepo struct {
	submissions  []model.TaskSubmission
	taskLessons  map[uint]uint // task id -> lesson id
	nextID       uint
	failCreateAs error // when set, Create returns this error
}

func (f *fakeSubmissionRepo) Create(submission *model.TaskSubmission) error {
	if f.failCreateAs != nil {
		return f.failCreateAs
	}
	for _, existing := range f.submissions {
		if existing.TaskID == submission.TaskID && existing.StudentID == submission.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	submission.ID = f.nextID
	f.submissions = append(f.submissions, *submission)
	return nil
}

func (f *fakeSubmissionRepo) FindByTaskAndStudent(taskID, studentID uint) (*model.TaskSubmission, error) {
	for _, submission := range f.submissions {
		if submission.TaskID == taskID && submission.StudentID == studentID {
			found := submission
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) FindFirstByLessonAndStudent(lessonID, studentID uint) (*model.TaskSubmission, error) {
	for _, submission := range f.submissions {
		if f.taskLessons[submission.TaskID] == lessonID && submission.StudentID == studentID {
			found := submission
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) FindAllByLesson(lessonID uint) ([]model.TaskSubmission, error) {
	var out []model.TaskSubmission
	for _, submission := range f.submissions {
		if f.taskLessons[submission.TaskID] == lessonID {
			out = append(out, submission)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) FindAllByLessonWithStudent(lessonID uint) ([]model.TaskSubmission, error) {
	return f.FindAllByLesson(lessonID)
}

func (f *fakeSubmissionRepo) UpdateMark(id uint, mark int) (int64, error) {
	for i := range f.submissions {
		if f.submissions[i].ID == id {
			m := mark
			f.submissions[i].Mark = &m
			return 1, nil
		}
	}
	return 0, nil
}

type fakeLessonRepo struct {
	lessons map[uint]*model.Lesson
	stats   []repository.LessonWithStats
	nextID  uint

	// taskRepo, when set, receives the created tasks the way a shared
	// database would.
	taskRepo *fakeTaskRepo
}

func (f *fakeLessonRepo) Create(lesson *model.Lesson) error {
	f.nextID++
	lesson.ID = f.nextID
	for i := range lesson.Questions {
		lesson.Questions[i].ID = uint(i + 1)
		lesson.Questions[i].LessonID = lesson.ID
	}
	for i := range lesson.Tasks {
		lesson.Tasks[i].ID = uint(i + 1)
		lesson.Tasks[i].LessonID = lesson.ID
	}
	if f.lessons == nil {
		f.lessons = map[uint]*model.Lesson{}
	}
	stored := *lesson
	f.lessons[lesson.ID] = &stored
	if f.taskRepo != nil {
		if f.taskRepo.tasks == nil {
			f.taskRepo.tasks = map[uint][]model.LessonTask{}
		}
		f.taskRepo.tasks[lesson.ID] = append([]model.LessonTask(nil), lesson.Tasks...)
	}
	return nil
}

// FindByIDWithRelations mirrors the real repository: teacher and questions
// only, never tasks.
func (f *fakeLessonRepo) FindByIDWithRelations(id uint) (*model.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *lesson
	found.Tasks = nil
	return &found, nil
}

func (f *fakeLessonRepo) FindAllWithStats() ([]repository.LessonWithStats, error) {
	return f.stats, nil
}

type fakeTaskRepo struct {
	tasks map[uint][]model.LessonTask // by lesson id
}

func (f *fakeTaskRepo) FindByLessonID(lessonID uint) ([]model.LessonTask, error) {
	return f.tasks[lessonID], nil
}

type fakeStudentRepo struct {
	students []model.Student
}

func (f *fakeStudentRepo) FindAll() ([]model.Student, error) {
	return f.students, nil
}

type fakeViewRepo struct {
	views  []model.LessonView
	nextID uint
}

func (f *fakeViewRepo) Create(view *model.LessonView) error {
	f.nextID++
	view.ID = f.nextID
	f.views = append(f.views, *view)
	return nil
}

func (f *fakeViewRepo) FindAllByLesson(lessonID uint) ([]model.LessonView, error) {
	var out []model.LessonView
	for _, view := range f.views {
		if view.LessonID == lessonID {
			out = append(out, view)
		}
	}
	return out, nil
}
