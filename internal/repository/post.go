package repository

import (
	"context"
	"errors"
	"time"

	"commune/internal/cache"
	"commune/internal/database"
	"commune/internal/models"
	"commune/internal/observability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post aggregate persistence.
// GetByID and GetByIDCached return (nil, nil) when the post does not exist.
//
// GetByIDCached may serve a copy up to PostTTL stale and is only suitable
// for read endpoints; every load that feeds a mutation must use GetByID.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	GetByIDCached(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Replace(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// postRepository implements PostRepository over the posts collection.
type postRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection(database.PostsCollection)}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", database.PostsCollection)()

	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *postRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	defer observability.TrackQuery("find", database.PostsCollection)()

	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByIDCached(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id.Hex()), &post, cache.PostTTL, func() error {
		defer observability.TrackQuery("find", database.PostsCollection)()
		return r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts ordered by creation time, newest first.
func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	defer observability.TrackQuery("find", database.PostsCollection)()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []*models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Replace writes the whole aggregate back in one document swap. This is the
// only write path for likes and comments, so the store's single-document
// atomicity is the full extent of the concurrency guarantee.
func (r *postRepository) Replace(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("replace", database.PostsCollection)()

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err == nil {
		cache.InvalidatePost(ctx, post.ID.Hex())
	}
	return err
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	defer observability.TrackQuery("delete", database.PostsCollection)()

	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err == nil {
		cache.InvalidatePost(ctx, id.Hex())
	}
	return err
}
