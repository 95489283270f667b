package service

import (
	"testing"

	"github.com/lessonlab/backend/internal/apperr"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLesson(t *testing.T) {
	teacher := model.Teacher{ID: 1, Name: "Ms Reed"}
	lessonRepo := &fakeLessonRepo{
		lessons: map[uint]*model.Lesson{
			1: {
				ID:      1,
				Title:   "Fractions",
				Teacher: &teacher,
				Questions: []model.QuizQuestion{
					{ID: 10, LessonID: 1, QuestionText: "1/2 + 1/4?", OptionA: "3/4", OptionB: "2/6", OptionC: "1/8", OptionD: "2/4", CorrectOption: "a"},
				},
			},
		},
	}
	taskRepo := &fakeTaskRepo{tasks: map[uint][]model.LessonTask{
		1: {
			{ID: 100, LessonID: 1, TaskText: "Write a worked example"},
			{ID: 101, LessonID: 1, TaskText: "Explain your steps"},
		},
	}}
	svc := NewLessonService(lessonRepo, taskRepo, &fakeViewRepo{})

	t.Run("tasks come from the task lookup", func(t *testing.T) {
		detail, err := svc.GetLesson(1)
		require.NoError(t, err)
		require.Len(t, detail.Tasks, 2)
		assert.Equal(t, uint(100), detail.Tasks[0].ID)
		assert.Equal(t, "Write a worked example", detail.Tasks[0].TaskText)
		assert.Equal(t, "Explain your steps", detail.Tasks[1].TaskText)
	})

	t.Run("questions never expose the correct option", func(t *testing.T) {
		detail, err := svc.GetLesson(1)
		require.NoError(t, err)
		require.Len(t, detail.Questions, 1)
		assert.Equal(t, "3/4", detail.Questions[0].OptionA)
		require.NotNil(t, detail.Lesson.TeacherName)
		assert.Equal(t, "Ms Reed", *detail.Lesson.TeacherName)
	})

	t.Run("missing lesson is a not-found error", func(t *testing.T) {
		_, err := svc.GetLesson(99)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCreateLesson(t *testing.T) {
	taskRepo := &fakeTaskRepo{}
	lessonRepo := &fakeLessonRepo{taskRepo: taskRepo}
	svc := NewLessonService(lessonRepo, taskRepo, &fakeViewRepo{})

	t.Run("creates lesson with questions and tasks", func(t *testing.T) {
		detail, err := svc.CreateLesson(dto.LessonCreateDTO{
			Title: "Decimals",
			Questions: []dto.QuestionCreateDTO{
				{QuestionText: "0.5 as a fraction?", OptionA: "1/2", OptionB: "1/5", OptionC: "5/100", OptionD: "2/5", CorrectOption: "a"},
			},
			Tasks: []dto.TaskCreateDTO{{TaskText: "Convert three decimals"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Decimals", detail.Lesson.Title)
		require.Len(t, detail.Questions, 1)
		require.Len(t, detail.Tasks, 1)
		assert.Equal(t, "Convert three decimals", detail.Tasks[0].TaskText)
	})

	t.Run("rejects invalid input before storage", func(t *testing.T) {
		_, err := svc.CreateLesson(dto.LessonCreateDTO{Title: "   "})
		assert.Error(t, err)
		assert.Len(t, lessonRepo.lessons, 1)
	})
}

func TestRecordView(t *testing.T) {
	viewRepo := &fakeViewRepo{}
	svc := NewLessonService(&fakeLessonRepo{}, &fakeTaskRepo{}, viewRepo)

	result, err := svc.RecordView(1, 2)
	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	require.Len(t, viewRepo.views, 1)
	assert.Equal(t, uint(1), viewRepo.views[0].LessonID)
	assert.Equal(t, uint(2), viewRepo.views[0].StudentID)

	_, err = svc.RecordView(0, 2)
	assert.Error(t, err)
	_, err = svc.RecordView(1, 0)
	assert.Error(t, err)
}
