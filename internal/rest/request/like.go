package request

import "github.com/Guyuepp/feed-engagement/domain"

// Like is the body of both like and cancel requests.
type Like struct {
	ContentType string `json:"content_type" form:"content_type" binding:"required,entitykind"`
	ObjectID    int64  `json:"object_id" form:"object_id" binding:"required,gt=0"`
}

// ToTarget: Request -> Domain
func (r *Like) ToTarget() (domain.EntityReference, error) {
	kind, err := domain.ParseEntityKind(r.ContentType)
	if err != nil {
		return domain.EntityReference{}, err
	}
	return domain.NewEntityReference(kind, r.ObjectID)
}

// LikeList selects the liker list of one target.
type LikeList struct {
	Like
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=200"`
}
