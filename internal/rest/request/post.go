package request

import "github.com/Guyuepp/feed-engagement/domain"

type Post struct {
	Content string `json:"content" binding:"required,min=6,max=140"`
}

func (r *Post) ToDomain(userID int64) domain.Post {
	return domain.Post{
		UserID:  userID,
		Content: r.Content,
	}
}

type Rename struct {
	Name string `json:"name" binding:"required,max=64"`
}
