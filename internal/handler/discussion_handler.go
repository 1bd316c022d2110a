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

// DiscussionHandler handles discussion thread endpoints.
type DiscussionHandler struct {
	discussionService *service.DiscussionService
}

// NewDiscussionHandler creates a new DiscussionHandler.
func NewDiscussionHandler(discussionService *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussionService: discussionService}
}

// Create godoc
// POST /api/v1/discussions
// Opens a discussion thread in a course.
func (h *DiscussionHandler) Create(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateDiscussionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	discussion, err := h.discussionService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"discussion": discussion})
}

// ListByCourse godoc
// GET /api/v1/discussions/course/:courseId
// Lists a course's discussion threads with replies, newest first.
func (h *DiscussionHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}

	discussions, err := h.discussionService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(discussions), gin.H{"discussions": discussions})
}

// Reply godoc
// POST /api/v1/discussions/:id/reply
// Appends a reply and returns the updated thread.
func (h *DiscussionHandler) Reply(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	if caller == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.ReplyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	discussion, err := h.discussionService.Reply(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"discussion": discussion})
}
