// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the aggregate root for the social feed. Likes and comments are
// embedded sub-documents owned by the post; they have no storage of their own
// and every mutation goes through a load-modify-save of the whole document.
//
// Name and Avatar are snapshots of the author's profile taken at creation
// time. Later profile changes do not update existing posts.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Likes     []Like             `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"date" json:"date"`
}

// Like marks that a user liked the parent post. At most one like per user
// per post; new likes are prepended so the slice is most-recent-first.
type Like struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User primitive.ObjectID `bson:"user" json:"user"`
}

// Comment is an embedded comment on the parent post, most-recent-first.
// Name and Avatar are commenter profile snapshots, like on Post.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"date" json:"date"`
}

// LikedBy reports whether the given user already has a like on the post.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *Post) FindComment(commentID primitive.ObjectID) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
