package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonlab/backend/internal/controller"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	lessonService     service.LessonService
	submissionService service.SubmissionService
	engagementService service.EngagementService
}

func NewStudentController(
	lessonService service.LessonService,
	submissionService service.SubmissionService,
	engagementService service.EngagementService,
) *StudentController {
	return &StudentController{
		lessonService:     lessonService,
		submissionService: submissionService,
		engagementService: engagementService,
	}
}

// GetAllLessons godoc
// @Summary List all published lessons
// @Description Get lesson summaries with teacher name, view count and quiz attempt count.
// @Tags Lessons
// @Produce json
// @Success 200 {array} dto.LessonSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /lessons [get]
func (c *StudentController) GetAllLessons(ctx *gin.Context) {
	lessons, err := c.lessonService.GetAllLessons()
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch lessons")
		return
	}
	ctx.JSON(http.StatusOK, lessons)
}

// GetLesson godoc
// @Summary Get a lesson with its questions and tasks
// @Description Student-facing lesson detail; quiz questions do not include the correct option.
// @Tags Lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.LessonDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /lessons/{id} [get]
func (c *StudentController) GetLesson(ctx *gin.Context) {
	lessonID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.lessonService.GetLesson(lessonID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch lesson detail")
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetStatus godoc
// @Summary Get a student's submission status for a lesson
// @Tags Lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Param student_id query int true "Student ID"
// @Success 200 {object} dto.StatusDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /lessons/{id}/status [get]
func (c *StudentController) GetStatus(ctx *gin.Context) {
	lessonID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID, ok := controller.ParseIDQuery(ctx, "student_id")
	if !ok {
		return
	}
	status, err := c.engagementService.GetStatus(lessonID, studentID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch status")
		return
	}
	ctx.JSON(http.StatusOK, status)
}

// RecordView godoc
// @Summary Record that a student viewed a lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param view body dto.RecordViewDTO true "Lesson and student"
// @Success 200 {object} dto.ViewResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /lessons/view [post]
func (c *StudentController) RecordView(ctx *gin.Context) {
	var req dto.RecordViewDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.lessonService.RecordView(req.LessonID, req.StudentID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to record view")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for a lesson
// @Description One submission per student per lesson; a second submission is rejected with 409.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizDTO true "Lesson, student and answers keyed by question id"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /lessons/quiz [post]
func (c *StudentController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmitQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("lessonID", req.LessonID).Uint("studentID", req.StudentID).
		Int("answerCount", len(req.Answers)).Msg("Received quiz submission")

	result, err := c.submissionService.SubmitQuiz(req.LessonID, req.StudentID, req.Answers)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to submit quiz")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitTask godoc
// @Summary Submit free-text content for a lesson task
// @Description One submission per student per task; a second submission is rejected with 409.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmitTaskDTO true "Task, student and content"
// @Success 200 {object} dto.TaskResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /lessons/task [post]
func (c *StudentController) SubmitTask(ctx *gin.Context) {
	var req dto.SubmitTaskDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitTask(req.TaskID, req.StudentID, req.Content)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to submit task")
		return
	}
	ctx.JSON(http.StatusOK, result)
}
