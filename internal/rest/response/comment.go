package response

import "github.com/Guyuepp/feed-engagement/domain"

type Comment struct {
	ID         int64   `json:"id"`
	PostID     int64   `json:"post_id"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"created_at"`
	User       *User   `json:"user,omitempty"`
	LikesCount int64   `json:"likes_count"`
	HasLiked   bool    `json:"has_liked"`
	Likes      []Liker `json:"likes,omitempty"`
}

// NewCommentFromView: View -> Response
func NewCommentFromView(c *domain.CommentView) Comment {
	return Comment{
		ID:         c.ID,
		PostID:     c.PostID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		User:       NewUserFromDomain(&c.User),
		LikesCount: c.LikesCount,
		HasLiked:   c.HasLiked,
		Likes:      NewLikersFromDomain(c.Likes),
	}
}

// NewCommentFromDomain renders a bare comment, e.g. right after creation.
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		User:      &User{ID: c.UserID},
	}
}
