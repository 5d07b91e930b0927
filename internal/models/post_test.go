package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPost_LikedBy(t *testing.T) {
	liker := primitive.NewObjectID()
	post := &Post{
		Likes: []Like{
			{ID: primitive.NewObjectID(), User: primitive.NewObjectID()},
			{ID: primitive.NewObjectID(), User: liker},
		},
	}

	assert.True(t, post.LikedBy(liker))
	assert.False(t, post.LikedBy(primitive.NewObjectID()))
	assert.False(t, (&Post{}).LikedBy(liker))
}

func TestPost_FindComment(t *testing.T) {
	target := Comment{ID: primitive.NewObjectID(), Text: "target"}
	post := &Post{
		Comments: []Comment{
			{ID: primitive.NewObjectID(), Text: "other"},
			target,
		},
	}

	found := post.FindComment(target.ID)
	require.NotNil(t, found)
	assert.Equal(t, "target", found.Text)

	assert.Nil(t, post.FindComment(primitive.NewObjectID()))
}
