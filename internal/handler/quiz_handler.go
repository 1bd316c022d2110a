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

// QuizHandler handles quiz authoring, publishing and submission endpoints.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Create godoc
// POST /api/v1/quizzes
// Creates an unpublished quiz in a course the caller owns.
func (h *QuizHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// ListByCourse godoc
// GET /api/v1/quizzes/course/:courseId
// Lists a course's published quizzes, questions omitted, newest first.
func (h *QuizHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}

	quizzes, err := h.quizService.ListPublishedByCourse(c.Request.Context(), courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(quizzes), gin.H{"quizzes": quizzes})
}

// Get godoc
// GET /api/v1/quizzes/:id
// Returns the quiz shaped for the caller: the owning instructor sees
// everything, students get the payload without correctness data.
func (h *QuizHandler) Get(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetForCaller(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Update godoc
// PUT /api/v1/quizzes/:id
// Updates a quiz the caller owns and invalidates its cached payload.
func (h *QuizHandler) Update(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Delete godoc
// DELETE /api/v1/quizzes/:id
// Deletes a quiz the caller owns together with its submissions.
func (h *QuizHandler) Delete(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Publish godoc
// PATCH /api/v1/quizzes/:id/publish
// Publishes a quiz. Publishing is irreversible and requires questions.
func (h *QuizHandler) Publish(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.Publish(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "Quiz published.", gin.H{"quiz": quiz})
}

// Submit godoc
// POST /api/v1/quizzes/:id/submit
// Grades the caller's answers and records the attempt.
func (h *QuizHandler) Submit(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.SubmitQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	submission, err := h.quizService.Submit(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": submission})
}

// ListSubmissions godoc
// GET /api/v1/quizzes/:id/submissions
// Lists every attempt on a quiz the caller owns, newest first.
func (h *QuizHandler) ListSubmissions(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	submissions, err := h.quizService.ListSubmissions(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(submissions), gin.H{"submissions": submissions})
}

// MyResults godoc
// GET /api/v1/quizzes/:id/results
// Lists the caller's own attempts on a quiz, newest first.
func (h *QuizHandler) MyResults(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	submissions, err := h.quizService.MyResults(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(submissions), gin.H{"submissions": submissions})
}
