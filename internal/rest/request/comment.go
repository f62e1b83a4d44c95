package request

import "github.com/Guyuepp/feed-engagement/domain"

type Comment struct {
	Content string `json:"content" binding:"required,max=140"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(postID, userID int64) domain.Comment {
	return domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: r.Content,
	}
}
