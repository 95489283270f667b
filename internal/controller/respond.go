package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lessonlab/backend/internal/apperr"
	"github.com/lessonlab/backend/internal/dto"
	"github.com/lessonlab/backend/internal/validation"
)

// WriteError maps a service error to its HTTP status: validation errors to
// 400 with field detail, duplicate submissions to 409, missing records to
// 404 and everything else to 500 with the fallback message.
func WriteError(ctx *gin.Context, err error, fallback string) {
	var vErr *validation.Error
	var dupErr *apperr.DuplicateSubmissionError
	var nfErr *apperr.NotFoundError

	switch {
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: vErr.Message, Fields: vErr.Fields})
	case errors.As(err, &dupErr):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: dupErr.Error()})
	case errors.As(err, &nfErr):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: nfErr.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := parseUint(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return id, true
}

// ParseIDQuery reads a positive integer query parameter.
func ParseIDQuery(ctx *gin.Context, name string) (uint, bool) {
	id, err := parseUint(ctx.Query(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return id, true
}
