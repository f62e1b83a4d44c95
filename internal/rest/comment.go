package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/rest/middleware"
	"github.com/Guyuepp/feed-engagement/internal/rest/request"
	"github.com/Guyuepp/feed-engagement/internal/rest/response"
)

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

type commentHandler struct {
	Service domain.CommentUsecase
	Views   domain.ViewAssembler
}

func NewCommentHandler(svc domain.CommentUsecase, views domain.ViewAssembler) *commentHandler {
	return &commentHandler{
		Service: svc,
		Views:   views,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID, ok := paramID(c, "id")
	if !ok {
		return
	}
	comment := req.ToDomain(postID, middleware.UserID(c))

	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully", "comment": response.NewCommentFromDomain(&comment)})
}

func (h *commentHandler) GetComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	view, err := h.Views.Comment(c.Request.Context(), id, middleware.UserID(c), true)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromView(&view))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this comment"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *commentHandler) FetchCommentsByPost(c *gin.Context) {
	num, err := strconv.Atoi(c.Query("num"))
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comments, nextCursor, err := h.Service.FetchByPost(ctx, postID, c.Query("cursor"), int64(num))
	if err != nil {
		abortWithError(c, err)
		return
	}

	viewer := middleware.UserID(c)
	res := make([]response.Comment, 0, len(comments))
	for i := range comments {
		view, err := h.Views.Comment(ctx, comments[i].ID, viewer, false)
		if err != nil {
			abortWithError(c, err)
			return
		}
		res = append(res, response.NewCommentFromView(&view))
	}

	c.Header("X-cursor", nextCursor)
	c.JSON(http.StatusOK, gin.H{"comments": res})
}
