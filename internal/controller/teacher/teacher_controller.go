package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonlab/backend/internal/controller"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type TeacherController struct {
	lessonService     service.LessonService
	submissionService service.SubmissionService
	engagementService service.EngagementService
}

func NewTeacherController(
	lessonService service.LessonService,
	submissionService service.SubmissionService,
	engagementService service.EngagementService,
) *TeacherController {
	return &TeacherController{
		lessonService:     lessonService,
		submissionService: submissionService,
		engagementService: engagementService,
	}
}

// CreateLesson godoc
// @Summary (Teacher) Publish a lesson with its quiz and tasks
// @Tags Teacher
// @Accept json
// @Produce json
// @Param lesson body dto.LessonCreateDTO true "Lesson with optional questions and tasks"
// @Success 201 {object} dto.LessonDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/lessons [post]
func (c *TeacherController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	created, err := c.lessonService.CreateLesson(req)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to create lesson")
		return
	}
	log.Info().Uint("lessonID", created.Lesson.ID).Str("title", created.Lesson.Title).Msg("Lesson published")
	ctx.JSON(http.StatusCreated, created)
}

// GetAttempts godoc
// @Summary (Teacher) List every quiz attempt for a lesson
// @Description Attempts are denormalized with student name and per-question answers including the correct option, for manual regrading.
// @Tags Teacher
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {array} dto.AttemptReviewDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/lessons/{id}/attempts [get]
func (c *TeacherController) GetAttempts(ctx *gin.Context) {
	lessonID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	attempts, err := c.engagementService.GetAttempts(lessonID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetSubmissions godoc
// @Summary (Teacher) List every task submission for a lesson
// @Tags Teacher
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {array} dto.SubmissionReviewDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/lessons/{id}/submissions [get]
func (c *TeacherController) GetSubmissions(ctx *gin.Context) {
	lessonID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	submissions, err := c.engagementService.GetSubmissions(lessonID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch submissions")
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetEngagement godoc
// @Summary (Teacher) Per-student engagement rollup for a lesson
// @Description One row per student in the system: viewed flag, quiz attempt and task submission, null when absent.
// @Tags Teacher
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {array} dto.EngagementRowDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/lessons/{id}/engagement [get]
func (c *TeacherController) GetEngagement(ctx *gin.Context) {
	lessonID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.engagementService.GetEngagement(lessonID)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch engagement")
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// MarkTask godoc
// @Summary (Teacher) Assign a mark to a task submission
// @Tags Teacher
// @Accept json
// @Produce json
// @Param mark body dto.MarkTaskDTO true "Submission id and mark"
// @Success 200 {object} dto.ChangesDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/mark/task [post]
func (c *TeacherController) MarkTask(ctx *gin.Context) {
	var req dto.MarkTaskDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	changes, err := c.submissionService.MarkTask(req.SubmissionID, *req.Mark)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to mark task")
		return
	}
	ctx.JSON(http.StatusOK, dto.ChangesDTO{Changes: changes})
}

// MarkQuiz godoc
// @Summary (Teacher) Override a quiz attempt's score
// @Description The new score must lie in [0, question count] for the attempt's lesson.
// @Tags Teacher
// @Accept json
// @Produce json
// @Param mark body dto.MarkQuizDTO true "Attempt id and score"
// @Success 200 {object} dto.ChangesDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teacher/mark/quiz [post]
func (c *TeacherController) MarkQuiz(ctx *gin.Context) {
	var req dto.MarkQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	changes, err := c.submissionService.MarkQuiz(req.AttemptID, *req.Score)
	if err != nil {
		controller.WriteError(ctx, err, "Failed to mark quiz")
		return
	}
	ctx.JSON(http.StatusOK, dto.ChangesDTO{Changes: changes})
}
