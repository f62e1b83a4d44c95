package response

import "github.com/Guyuepp/feed-engagement/domain"

// Like is the result of a like request.
type Like struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ContentType string `json:"content_type"`
	ObjectID    int64  `json:"object_id"`
	CreatedAt   string `json:"created_at"`
}

func NewLikeFromDomain(l *domain.Like) Like {
	return Like{
		ID:          l.ID,
		UserID:      l.UserID,
		ContentType: string(l.Target.Kind),
		ObjectID:    l.Target.ID,
		CreatedAt:   l.CreatedAt.Format(DateTimeFormat),
	}
}

// Liker is one entry of a rendered liker list.
type Liker struct {
	ID        int64  `json:"id"`
	User      *User  `json:"user"`
	CreatedAt string `json:"created_at"`
}

func NewLikersFromDomain(views []domain.LikeView) []Liker {
	if views == nil {
		return nil
	}
	res := make([]Liker, len(views))
	for i := range views {
		res[i] = Liker{
			ID:        views[i].ID,
			User:      NewUserFromDomain(&views[i].User),
			CreatedAt: views[i].CreatedAt.Format(DateTimeFormat),
		}
	}
	return res
}

// Cancel is the result of a cancel request. Deleted tells whether a like existed.
type Cancel struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}
