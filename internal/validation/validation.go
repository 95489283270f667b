// Package validation holds the domain validators. They are pure functions,
// separate from gin's request binding, so services can apply the same rules
// when invoked directly.
package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
	MaxTaskContentLength = 10000
)

// Error carries a message plus optional per-field detail. It never
// indicates a storage fault; validation runs before any storage access.
type Error struct {
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

func newError(message string) *Error {
	return &Error{Message: message}
}

// LessonInput is the canonical typed shape validated before a lesson is
// created.
type LessonInput struct {
	Title       string
	Description string
	VideoURL    *string
	TeacherID   *uint
}

func ValidateLessonInput(in LessonInput) error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "Title is required and must be a non-empty string"
	} else if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		fields["title"] = fmt.Sprintf("Title must not exceed %d characters", MaxTitleLength)
	}

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("Description must not exceed %d characters", MaxDescriptionLength)
	}

	if in.VideoURL != nil && *in.VideoURL != "" && !isValidURL(*in.VideoURL) {
		fields["video_url"] = "Video URL must be a valid URL"
	}

	if in.TeacherID != nil && *in.TeacherID < 1 {
		fields["teacher_id"] = "Teacher ID must be a positive integer"
	}

	if len(fields) > 0 {
		return &Error{Message: "Lesson validation failed", Fields: fields}
	}
	return nil
}

// ValidateQuizAnswers checks that every answer key, interpreted as an
// integer, is a member of the lesson's known question-id set, and returns
// the answers re-keyed by question id. Offending keys are named in the
// error message.
func ValidateQuizAnswers(answers map[string]string, questionIDs []uint) (map[uint]string, error) {
	known := make(map[uint]struct{}, len(questionIDs))
	for _, id := range questionIDs {
		known[id] = struct{}{}
	}

	parsed := make(map[uint]string, len(answers))
	var invalid []string
	for key, value := range answers {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			invalid = append(invalid, key)
			continue
		}
		if _, ok := known[uint(id)]; !ok {
			invalid = append(invalid, key)
			continue
		}
		parsed[uint(id)] = value
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, newError("Invalid question IDs: " + strings.Join(invalid, ", "))
	}
	return parsed, nil
}

func ValidateTaskSubmission(content string) error {
	if strings.TrimSpace(content) == "" {
		return newError("Task submission content is required")
	}
	if utf8.RuneCountInString(content) > MaxTaskContentLength {
		return newError(fmt.Sprintf("Task submission content must not exceed %d characters", MaxTaskContentLength))
	}
	return nil
}

func ValidateStudentID(id uint) error {
	if id < 1 {
		return &Error{
			Message: "Student ID must be a positive integer",
			Fields:  map[string]string{"student_id": "Invalid student ID"},
		}
	}
	return nil
}

func ValidateLessonID(id uint) error {
	if id < 1 {
		return &Error{
			Message: "Lesson ID must be a positive integer",
			Fields:  map[string]string{"lesson_id": "Invalid lesson ID"},
		}
	}
	return nil
}

func ValidateQuizMark(score, totalQuestions int) error {
	if score < 0 || score > totalQuestions {
		return newError(fmt.Sprintf("Mark must be an integer between 0 and %d", totalQuestions))
	}
	return nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
