package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/feed-engagement/domain"
	"github.com/Guyuepp/feed-engagement/internal/rest/middleware"
	"github.com/Guyuepp/feed-engagement/internal/rest/request"
	"github.com/Guyuepp/feed-engagement/internal/rest/response"
)

const DefaultLikeListNum = 20

// LikeHandler represent the httphandler for likes on posts and comments
type LikeHandler struct {
	Service domain.LikeUsecase
	Views   domain.ViewAssembler
}

func NewLikeHandler(svc domain.LikeUsecase, views domain.ViewAssembler) *LikeHandler {
	return &LikeHandler{
		Service: svc,
		Views:   views,
	}
}

func bindTarget(c *gin.Context, req *request.Like) (domain.EntityReference, bool) {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please check input", "errors": err.Error()})
		return domain.EntityReference{}, false
	}
	target, err := req.ToTarget()
	if err != nil {
		abortWithError(c, err)
		return domain.EntityReference{}, false
	}
	return target, true
}

// Create likes the target; liking twice returns the existing like
func (h *LikeHandler) Create(c *gin.Context) {
	var req request.Like
	target, ok := bindTarget(c, &req)
	if !ok {
		return
	}

	like, err := h.Service.Like(c.Request.Context(), middleware.UserID(c), target)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewLikeFromDomain(&like))
}

// Cancel removes the like if it exists and reports whether it did
func (h *LikeHandler) Cancel(c *gin.Context) {
	var req request.Like
	target, ok := bindTarget(c, &req)
	if !ok {
		return
	}

	deleted, err := h.Service.Cancel(c.Request.Context(), middleware.UserID(c), target)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Cancel{Success: true, Deleted: deleted})
}

// List renders the likers of a target, newest first
func (h *LikeHandler) List(c *gin.Context) {
	var req request.LikeList
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please check input", "errors": err.Error()})
		return
	}
	if req.Limit == 0 {
		req.Limit = DefaultLikeListNum
	}
	target, err := req.ToTarget()
	if err != nil {
		abortWithError(c, err)
		return
	}

	likers, err := h.Views.Likes(c.Request.Context(), target, req.Limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res := response.NewLikersFromDomain(likers)
	if res == nil {
		res = []response.Liker{}
	}
	c.JSON(http.StatusOK, gin.H{"likes": res})
}
