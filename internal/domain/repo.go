package domain

import (
	"context"
	"time"
)

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, u User) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
}

type BooksRepo interface {
	CreateBook(ctx context.Context, b Book) (Book, error)
	BookByID(ctx context.Context, id BookID) (Book, error)
	BooksList(ctx context.Context, limit int) ([]Book, error)
	BooksByOwner(ctx context.Context, owner UserID) ([]Book, error)
	UpdateBook(ctx context.Context, id BookID, p BookPatch, now time.Time) (Book, error)
	DeleteBook(ctx context.Context, id BookID) error
}

type ReviewsRepo interface {
	CreateReview(ctx context.Context, rv Review) (Review, error)
	ReviewByID(ctx context.Context, id ReviewID) (Review, error)
	ReviewsByBook(ctx context.Context, book BookID) ([]Review, error)
	DeleteReview(ctx context.Context, id ReviewID) error
}
