package service

import (
	"testing"

	"github.com/lessonlab/backend/internal/apperr"
	"github.com/lessonlab/backend/internal/model"
	"github.com/lessonlab/backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func lessonQuestions() map[uint][]model.QuizQuestion {
	return map[uint][]model.QuizQuestion{
		10: {
			{ID: 1, LessonID: 10, CorrectOption: "a"},
			{ID: 2, LessonID: 10, CorrectOption: "b"},
			{ID: 3, LessonID: 10, CorrectOption: "c"},
		},
	}
}

func newSubmissionFixture() (SubmissionService, *fakeAttemptRepo, *fakeSubmissionRepo) {
	attempts := &fakeAttemptRepo{}
	submissions := &fakeSubmissionRepo{taskLessons: map[uint]uint{5: 10}}
	svc := NewSubmissionService(&fakeQuestionRepo{questions: lessonQuestions()}, attempts, submissions)
	return svc, attempts, submissions
}

func TestSubmitQuizScoresAnswers(t *testing.T) {
	svc, attempts, _ := newSubmissionFixture()

	result, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "a", "2": "c", "3": "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)

	require.Len(t, attempts.attempts, 1)
	recorded := attempts.attempts[0]
	assert.Equal(t, 2, recorded.Score)
	require.Len(t, recorded.Answers, 3)
	byQuestion := map[uint]string{}
	for _, answer := range recorded.Answers {
		byQuestion[answer.QuestionID] = answer.Answer
	}
	assert.Equal(t, map[uint]string{1: "a", 2: "c", 3: "c"}, byQuestion)
}

func TestSubmitQuizDuplicateRejected(t *testing.T) {
	svc, attempts, _ := newSubmissionFixture()

	_, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "a"})
	require.NoError(t, err)

	_, err = svc.SubmitQuiz(10, 7, map[string]string{"1": "b"})
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateSubmission(err))
	assert.EqualError(t, err, "Student has already submitted quiz for this lesson")
	assert.Len(t, attempts.attempts, 1, "second submission must not create an attempt")
}

// A racing submission that slips past the existence check is stopped by the
// storage unique index and reported as a duplicate.
func TestSubmitQuizRaceHitsUniqueIndex(t *testing.T) {
	questions := &fakeQuestionRepo{questions: lessonQuestions()}
	attempts := &raceAttemptRepo{}
	svc := NewSubmissionService(questions, attempts, &fakeSubmissionRepo{})

	_, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "a"})
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateSubmission(err))
}

// raceAttemptRepo reports no existing attempt but fails the insert with a
// duplicate-key conflict, as happens when two requests race.
type raceAttemptRepo struct {
	fakeAttemptRepo
}

func (r *raceAttemptRepo) FindByLessonAndStudent(lessonID, studentID uint) (*model.QuizAttempt, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *raceAttemptRepo) Create(attempt *model.QuizAttempt) error {
	return gorm.ErrDuplicatedKey
}

func TestSubmitQuizCreatesAnswerPerQuestion(t *testing.T) {
	svc, attempts, _ := newSubmissionFixture()

	result, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)

	require.Len(t, attempts.attempts, 1)
	answers := attempts.attempts[0].Answers
	require.Len(t, answers, 3, "one answer row per question, answered or not")
	unanswered := 0
	for _, answer := range answers {
		if answer.Answer == "" {
			unanswered++
		}
	}
	assert.Equal(t, 2, unanswered)
}

func TestSubmitQuizZeroQuestions(t *testing.T) {
	svc := NewSubmissionService(&fakeQuestionRepo{questions: map[uint][]model.QuizQuestion{}}, &fakeAttemptRepo{}, &fakeSubmissionRepo{})

	result, err := svc.SubmitQuiz(42, 7, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.NotZero(t, result.ID)
}

func TestSubmitQuizRejectsUnknownQuestionIDs(t *testing.T) {
	svc, attempts, _ := newSubmissionFixture()

	_, err := svc.SubmitQuiz(10, 7, map[string]string{"99": "a"})
	require.Error(t, err)
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "99")
	assert.Empty(t, attempts.attempts)
}

func TestSubmitQuizCaseSensitiveScoring(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	result, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "A", "2": "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score, "option letters are compared without case folding")
}

func TestSubmitTaskDuplicateGuard(t *testing.T) {
	svc, _, submissions := newSubmissionFixture()

	first, err := svc.SubmitTask(5, 7, "my essay")
	require.NoError(t, err)

	_, err = svc.SubmitTask(5, 7, "a different essay")
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateSubmission(err))
	assert.EqualError(t, err, "Student has already submitted this task")

	require.Len(t, submissions.submissions, 1)
	assert.Equal(t, first.ID, submissions.submissions[0].ID)
	assert.Equal(t, "my essay", submissions.submissions[0].Content, "original submission must be unmodified")
}

func TestSubmitTaskRaceHitsUniqueIndex(t *testing.T) {
	svc, _, submissions := newSubmissionFixture()
	submissions.failCreateAs = gorm.ErrDuplicatedKey

	_, err := svc.SubmitTask(5, 7, "content")
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateSubmission(err))
}

func TestSubmitTaskValidatesContent(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.SubmitTask(5, 7, "   ")
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)

	long := make([]byte, validation.MaxTaskContentLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = svc.SubmitTask(5, 7, string(long))
	require.ErrorAs(t, err, &vErr)
}

func TestMarkQuiz(t *testing.T) {
	svc, attempts, _ := newSubmissionFixture()

	result, err := svc.SubmitQuiz(10, 7, map[string]string{"1": "a"})
	require.NoError(t, err)

	changes, err := svc.MarkQuiz(result.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)
	assert.Equal(t, 3, attempts.attempts[0].Score)

	// Out of range against the lesson's question count.
	_, err = svc.MarkQuiz(result.ID, 4)
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)

	_, err = svc.MarkQuiz(result.ID, -1)
	require.ErrorAs(t, err, &vErr)
}

func TestMarkQuizMissingAttempt(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.MarkQuiz(999, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestMarkTask(t *testing.T) {
	svc, _, submissions := newSubmissionFixture()

	result, err := svc.SubmitTask(5, 7, "essay")
	require.NoError(t, err)

	changes, err := svc.MarkTask(result.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)
	require.NotNil(t, submissions.submissions[0].Mark)
	assert.Equal(t, 8, *submissions.submissions[0].Mark)
}

func TestMarkTaskMissingSubmission(t *testing.T) {
	svc, _, _ := newSubmissionFixture()

	_, err := svc.MarkTask(999, 8)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
