package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/feed-engagement/internal/rest/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Like    *LikeHandler
	Post    *PostHandler
	Comment *commentHandler
	User    *UserHandler
}

// RegisterRoutes mounts the API on route. Reads accept anonymous callers.
func RegisterRoutes(route gin.IRouter, h Handlers) {
	route.Use(middleware.Identity())

	route.GET("/posts/:id", h.Post.GetByID)
	route.GET("/posts/:id/comments", h.Comment.FetchCommentsByPost)
	route.GET("/comments/:id", h.Comment.GetComment)
	route.GET("/likes", h.Like.List)
	route.GET("/users/:id", h.User.GetByID)

	authorized := route.Group("/")
	authorized.Use(middleware.RequireUser())
	{
		authorized.POST("/posts", h.Post.Store)
		authorized.DELETE("/posts/:id", h.Post.Delete)
		authorized.POST("/posts/:id/comments", h.Comment.CreateComment)
		authorized.DELETE("/comments/:id", h.Comment.DeleteComment)
		authorized.POST("/likes", h.Like.Create)
		authorized.POST("/likes/cancel", h.Like.Cancel)
		authorized.PUT("/users/me", h.User.Rename)
	}
}
