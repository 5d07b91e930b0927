// Package service holds the domain logic that sits between HTTP handlers and
// repositories.
package service

import (
	"context"
	"strings"
	"time"

	"commune/internal/models"
	"commune/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService owns the post aggregate: creation, listing, deletion, and every
// mutation of the embedded like and comment collections. Each operation is a
// single load-modify-save transaction against one post document; there is no
// cross-document coordination and no application-level locking.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// parsePostID maps malformed ids to NOT_FOUND rather than a validation
// error: an id that cannot exist resolves to no post, same as an unknown one.
func parsePostID(hex string) (primitive.ObjectID, *models.AppError) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, models.NewNotFoundError("Post")
	}
	return id, nil
}

// CreatePost validates the text, snapshots the author's name and avatar into
// the new post, and persists it.
func (s *PostService) CreatePost(ctx context.Context, userID primitive.ObjectID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text field is required")
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User")
	}

	post := &models.Post{
		User:      userID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	id, appErr := parsePostID(postID)
	if appErr != nil {
		return nil, appErr
	}

	post, err := s.postRepo.GetByIDCached(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}
	return post, nil
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID primitive.ObjectID, postID string) error {
	id, appErr := parsePostID(postID)
	if appErr != nil {
		return appErr
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return models.NewNotFoundError("Post")
	}
	if post.User != userID {
		return models.NewForbiddenError("Not authorized to delete")
	}

	return s.postRepo.Delete(ctx, id)
}

// LikePost prepends a like for the user and returns the updated like
// collection. A second like by the same user is rejected.
func (s *PostService) LikePost(ctx context.Context, userID primitive.ObjectID, postID string) ([]models.Like, error) {
	id, appErr := parsePostID(postID)
	if appErr != nil {
		return nil, appErr
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}
	if post.LikedBy(userID) {
		return nil, models.NewAlreadyLikedError()
	}

	like := models.Like{ID: primitive.NewObjectID(), User: userID}
	post.Likes = append([]models.Like{like}, post.Likes...)

	if err := s.postRepo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// UnlikePost removes the user's like and returns the updated like collection.
// Exactly the entry whose author matches the user is removed, never a
// positionally-first entry belonging to someone else.
func (s *PostService) UnlikePost(ctx context.Context, userID primitive.ObjectID, postID string) ([]models.Like, error) {
	id, appErr := parsePostID(postID)
	if appErr != nil {
		return nil, appErr
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}
	if !post.LikedBy(userID) {
		return nil, models.NewNotLikedError()
	}

	for i := range post.Likes {
		if post.Likes[i].User == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			break
		}
	}

	if err := s.postRepo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment with the commenter's profile snapshot and
// returns the updated comment collection.
func (s *PostService) AddComment(ctx context.Context, userID primitive.ObjectID, postID, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text field is required")
	}

	id, appErr := parsePostID(postID)
	if appErr != nil {
		return nil, appErr
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}

	commenter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if commenter == nil {
		return nil, models.NewNotFoundError("User")
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Text:      text,
		Name:      commenter.Name,
		Avatar:    commenter.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append([]models.Comment{comment}, post.Comments...)

	if err := s.postRepo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes a comment from a post. Only the comment's author may
// delete it. Removal is keyed by the comment id, not the author: two
// comments by the same user on one post must stay independently deletable.
func (s *PostService) DeleteComment(ctx context.Context, userID primitive.ObjectID, postID, commentID string) ([]models.Comment, error) {
	id, appErr := parsePostID(postID)
	if appErr != nil {
		return nil, appErr
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, models.NewNotFoundError("Comment")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError("Post")
	}

	comment := post.FindComment(cid)
	if comment == nil {
		return nil, models.NewNotFoundError("Comment")
	}
	if comment.User != userID {
		return nil, models.NewForbiddenError("User not authorized")
	}

	for i := range post.Comments {
		if post.Comments[i].ID == cid {
			post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
			break
		}
	}

	if err := s.postRepo.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
