package repository

import (
	"context"

	"ecogood/internal/domain/model"
)

type BlogPostRepository interface {
	// Newest first.
	ListAll(ctx context.Context) ([]model.BlogPost, error)
	FindByID(ctx context.Context, id int64) (model.BlogPost, error)
	Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	Delete(ctx context.Context, id int64) error

	// Bulk replacement for admin sync. Only meaningful inside a transaction.
	DeleteAll(ctx context.Context) error
	CreateBulk(ctx context.Context, posts []model.BlogPost) error
}
