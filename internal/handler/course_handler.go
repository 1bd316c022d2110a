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

// CourseHandler handles course CRUD and enrollment.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List godoc
// GET /api/v1/courses
// Lists all courses with instructor summaries.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(courses), gin.H{"courses": courses})
}

// Create godoc
// POST /api/v1/courses
// Creates a course owned by the calling instructor.
func (h *CourseHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// MyCourses godoc
// GET /api/v1/courses/my-courses
// Instructors get their own courses, students their enrollments.
func (h *CourseHandler) MyCourses(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	courses, err := h.courseService.MyCourses(c.Request.Context(), caller)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(courses), gin.H{"courses": courses})
}

// Get godoc
// GET /api/v1/courses/:id
// Returns one course with students, lectures and assignments.
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Update godoc
// PUT /api/v1/courses/:id
// Updates a course the caller owns.
func (h *CourseHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Delete godoc
// DELETE /api/v1/courses/:id
// Deletes a course the caller owns.
func (h *CourseHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Enroll godoc
// POST /api/v1/courses/:id/enroll
// Enrolls the caller into a course.
func (h *CourseHandler) Enroll(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Enroll(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Enrolled successfully.", gin.H{"course": course})
}
