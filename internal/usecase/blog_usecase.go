package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

type BlogUsecase struct {
	postRepo repo.BlogPostRepository
}

func NewBlogUsecase(postRepo repo.BlogPostRepository) *BlogUsecase {
	return &BlogUsecase{postRepo: postRepo}
}

func (u *BlogUsecase) ListPosts(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := u.postRepo.ListAll(ctx)
	if err != nil {
		return []model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return posts, nil
}

func (u *BlogUsecase) GetPostDetail(ctx context.Context, postID int64) (model.BlogPost, error) {
	if postID <= 0 {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	post, err := u.postRepo.FindByID(ctx, postID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return post, nil
}

type BlogPostInput struct {
	Title    string
	Excerpt  string
	Image    string
	Category string
	Date     string
}

func (u *BlogUsecase) CreatePost(ctx context.Context, in BlogPostInput) (model.BlogPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "title is required")
	}

	created, err := u.postRepo.Create(ctx, model.BlogPost{
		Title:    strings.TrimSpace(in.Title),
		Excerpt:  in.Excerpt,
		Image:    in.Image,
		Category: in.Category,
		Date:     in.Date,
	})
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

func (u *BlogUsecase) DeletePost(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	err := u.postRepo.Delete(ctx, postID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
