package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/o064/SWE-Back-End/internal/response"
	"github.com/o064/SWE-Back-End/internal/service"
)

// writeError maps a service error to its HTTP status and response code.
// Anything unrecognized is treated as an internal error.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		response.Fail(c, http.StatusBadRequest, response.ErrEmailTaken)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)

	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrUserNotFound)
	case errors.Is(err, service.ErrCourseNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
	case errors.Is(err, service.ErrLectureNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrLectureNotFound)
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrAssignmentNotFound)
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSubmissionNotFound)
	case errors.Is(err, service.ErrQuizNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrQuizNotFound)
	case errors.Is(err, service.ErrDiscussionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrDiscussionNotFound)

	case errors.Is(err, service.ErrNotOwner):
		response.Fail(c, http.StatusForbidden, response.ErrNotOwner)
	case errors.Is(err, service.ErrRoleNotAllowed):
		response.Fail(c, http.StatusForbidden, response.ErrRoleForbidden)
	case errors.Is(err, service.ErrQuizHidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)

	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Fail(c, http.StatusBadRequest, response.ErrAlreadyEnrolled)
	case errors.Is(err, service.ErrAlreadySubmitted):
		response.Fail(c, http.StatusBadRequest, response.ErrAlreadySubmitted)
	case errors.Is(err, service.ErrQuizNotPublished):
		response.Fail(c, http.StatusBadRequest, response.ErrQuizNotPublished)
	case errors.Is(err, service.ErrQuizNoQuestions):
		response.Fail(c, http.StatusBadRequest, response.ErrQuizNoQuestions)
	case errors.Is(err, service.ErrAttemptsExhausted):
		response.Fail(c, http.StatusBadRequest, response.ErrAttemptsExhausted)
	case errors.Is(err, service.ErrBadQuestion):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)

	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// pathID parses a UUID route parameter, failing the request on bad input.
// The second return value reports whether the handler should continue.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
