package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/rest/middleware"
	"github.com/Guyuepp/feed-engagement/internal/rest/request"
	"github.com/Guyuepp/feed-engagement/internal/rest/response"
)

// PostHandler represent the httphandler for posts
type PostHandler struct {
	Service domain.PostUsecase
	Views   domain.ViewAssembler
}

func NewPostHandler(svc domain.PostUsecase, views domain.ViewAssembler) *PostHandler {
	return &PostHandler{
		Service: svc,
		Views:   views,
	}
}

// GetByID renders the post with its likes and comments for the caller
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	view, err := h.Views.Post(c.Request.Context(), id, middleware.UserID(c), true)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPostFromView(&view))
}

// Store will store the post by given request body
func (h *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := middleware.UserID(c)
	post := req.ToDomain(uid)

	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &post); err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.Views.Post(ctx, post.ID, uid, false)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewPostFromView(&view))
}

// Delete will delete the post by given param
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
