package response

import "github.com/Guyuepp/feed-engagement/domain"

type Post struct {
	ID            int64     `json:"id"`
	User          *User     `json:"user"`
	Content       string    `json:"content"`
	CreatedAt     string    `json:"created_at"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	HasLiked      bool      `json:"has_liked"`
	Likes         []Liker   `json:"likes,omitempty"`
	Comments      []Comment `json:"comments,omitempty"`
}

// NewPostFromView: View -> Response
func NewPostFromView(p *domain.PostView) Post {
	res := Post{
		ID:            p.ID,
		User:          NewUserFromDomain(&p.User),
		Content:       p.Content,
		CreatedAt:     p.CreatedAt.Format(DateTimeFormat),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		HasLiked:      p.HasLiked,
		Likes:         NewLikersFromDomain(p.Likes),
	}
	if p.Comments != nil {
		res.Comments = make([]Comment, len(p.Comments))
		for i := range p.Comments {
			res.Comments[i] = NewCommentFromView(&p.Comments[i])
		}
	}
	return res
}
