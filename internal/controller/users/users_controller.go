package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonlab/backend/internal/auth"
	"github.com/lessonlab/backend/internal/controller"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/service"
)

type UsersController struct {
	userService service.UserService
	authManager *auth.Manager
}

func NewUsersController(userService service.UserService, authManager *auth.Manager) *UsersController {
	return &UsersController{userService: userService, authManager: authManager}
}

// List godoc
// @Summary List all students and teachers
// @Tags Users
// @Produce json
// @Success 200 {object} dto.UsersDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UsersController) List(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers()
	if err != nil {
		controller.WriteError(ctx, err, "Failed to fetch users")
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// IssueToken godoc
// @Summary Issue a JWT for a user id and role
// @Description Development token issuance; identity is picked from the user listing, there is no password flow.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.TokenRequestDTO true "User id and role"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /users/token [post]
func (c *UsersController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authManager.GenerateToken(req.UserID, req.Role)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{Token: token})
}
