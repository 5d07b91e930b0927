// Package seed populates the document store with fake development data.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"commune/internal/models"
	"commune/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password assigned to every seeded account.
const DefaultPassword = "password123"

// Options controls how much data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
}

// DefaultOptions returns a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{Users: 10, PostsPerUser: 3, CommentsPerPost: 2}
}

// Run creates fake users and posts with likes and comments. All writes go
// through the same repositories and services the API uses, so seeded data is
// shaped exactly like production data.
func Run(ctx context.Context, db *mongo.Database, opts Options) error {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hash),
			Avatar:   gofakeit.ImageURL(200, 200),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for _, author := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := &models.Post{
				User:     author.ID,
				Text:     gofakeit.Sentence(12),
				Name:     author.Name,
				Avatar:   author.Avatar,
				Likes:    fakeLikes(users),
				Comments: fakeComments(users, opts.CommentsPerPost),
			}

			if err := postRepo.Create(ctx, post); err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(users)*opts.PostsPerUser)
	return nil
}

// fakeComments draws n commenters from users with replacement, so the count
// is honored even when it exceeds the number of seeded users.
func fakeComments(users []*models.User, n int) []models.Comment {
	if len(users) == 0 || n <= 0 {
		return []models.Comment{}
	}

	now := time.Now().UTC()
	comments := make([]models.Comment, 0, n)
	for i := 0; i < n; i++ {
		commenter := users[gofakeit.Number(0, len(users)-1)]
		comments = append(comments, models.Comment{
			ID:        primitive.NewObjectID(),
			User:      commenter.ID,
			Text:      gofakeit.Sentence(8),
			Name:      commenter.Name,
			Avatar:    commenter.Avatar,
			CreatedAt: gofakeit.DateRange(now.Add(-30*24*time.Hour), now),
		})
	}
	return comments
}

// fakeLikes picks a random subset of users, one like per user at most.
func fakeLikes(users []*models.User) []models.Like {
	likes := []models.Like{}
	for _, liker := range users {
		if gofakeit.Bool() {
			likes = append(likes, models.Like{ID: primitive.NewObjectID(), User: liker.ID})
		}
	}
	return likes
}
