package domain

import (
	"fmt"
	"strings"
)

// EntityKind tags which table an EntityReference points into.
type EntityKind string

const (
	KindPost    EntityKind = "post"
	KindComment EntityKind = "comment"
)

// SupportedKinds lists every kind a like can attach to.
var SupportedKinds = []EntityKind{KindPost, KindComment}

func (k EntityKind) Valid() bool {
	switch k {
	case KindPost, KindComment:
		return true
	default:
		return false
	}
}

func (k EntityKind) String() string {
	return string(k)
}

// ParseEntityKind maps a request tag such as "post" or "Comment" to an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidTarget, s)
	}
	return k, nil
}

// EntityReference identifies a likeable entity by kind and id.
// It is a comparable value and can be used as a map key.
type EntityReference struct {
	Kind EntityKind `json:"kind"`
	ID   int64      `json:"id"`
}

// NewEntityReference builds a reference, rejecting unsupported kinds and non-positive ids.
func NewEntityReference(kind EntityKind, id int64) (EntityReference, error) {
	if !kind.Valid() {
		return EntityReference{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidTarget, string(kind))
	}
	if id <= 0 {
		return EntityReference{}, fmt.Errorf("%w: id must be positive, got %d", ErrBadParamInput, id)
	}
	return EntityReference{Kind: kind, ID: id}, nil
}

func PostRef(id int64) EntityReference {
	return EntityReference{Kind: KindPost, ID: id}
}

func CommentRef(id int64) EntityReference {
	return EntityReference{Kind: KindComment, ID: id}
}

// Validate applies the NewEntityReference checks to a reference built as a literal.
func (r EntityReference) Validate() error {
	_, err := NewEntityReference(r.Kind, r.ID)
	return err
}

// Less orders references by kind, then id.
func (r EntityReference) Less(o EntityReference) bool {
	if r.Kind != o.Kind {
		return r.Kind < o.Kind
	}
	return r.ID < o.ID
}

func (r EntityReference) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.ID)
}
