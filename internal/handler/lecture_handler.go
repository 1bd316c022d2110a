package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/o064/SWE-Back-End/internal/middleware"
	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/response"
	"github.com/o064/SWE-Back-End/internal/service"
	"github.com/o064/SWE-Back-End/internal/validator"
)

// LectureHandler handles lecture endpoints.
type LectureHandler struct {
	lectureService *service.LectureService
}

// NewLectureHandler creates a new LectureHandler.
func NewLectureHandler(lectureService *service.LectureService) *LectureHandler {
	return &LectureHandler{lectureService: lectureService}
}

// Create godoc
// POST /api/v1/lectures
// Adds a lecture to a course the caller owns.
func (h *LectureHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lecture": lecture})
}

// ListByCourse godoc
// GET /api/v1/lectures/course/:courseId
// Lists a course's lectures in presentation order.
func (h *LectureHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}

	lectures, err := h.lectureService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(lectures), gin.H{"lectures": lectures})
}

// Update godoc
// PUT /api/v1/lectures/:id
// Updates a lecture in a course the caller owns.
func (h *LectureHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateLectureRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lecture, err := h.lectureService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lecture": lecture})
}

// Delete godoc
// DELETE /api/v1/lectures/:id
// Removes a lecture from a course the caller owns.
func (h *LectureHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lectureService.Delete(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
