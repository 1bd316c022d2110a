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

// AssignmentHandler handles assignment and submission endpoints.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// Create godoc
// POST /api/v1/assignments
// Creates an assignment in a course the caller owns.
func (h *AssignmentHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// ListByCourse godoc
// GET /api/v1/assignments/course/:courseId
// Lists all assignments of a course.
func (h *AssignmentHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(assignments), gin.H{"assignments": assignments})
}

// Submit godoc
// POST /api/v1/assignments/submit
// Hands in the caller's work for an assignment. One submission per student.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.SubmitAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	submission, err := h.assignmentService.Submit(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": submission})
}

// Grade godoc
// PUT /api/v1/assignments/grade/:id
// Grades a submission of an assignment the caller owns.
func (h *AssignmentHandler) Grade(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.GradeSubmissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	submission, err := h.assignmentService.Grade(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}
