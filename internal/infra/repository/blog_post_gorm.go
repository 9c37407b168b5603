package repository

import (
	"context"
	"errors"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"

	"gorm.io/gorm"
)

type BlogPostGormRepository struct {
	db *gorm.DB
}

func NewBlogPostGormRepository(db *gorm.DB) *BlogPostGormRepository {
	return &BlogPostGormRepository{db: db}
}

func (r *BlogPostGormRepository) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost

	if err := r.db.WithContext(ctx).
		Order("id desc").
		Find(&posts).Error; err != nil {
		return []model.BlogPost{}, err
	}

	return posts, nil
}

func (r *BlogPostGormRepository) FindByID(ctx context.Context, id int64) (model.BlogPost, error) {
	var post model.BlogPost

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPost{}, repo.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	return post, nil
}

func (r *BlogPostGormRepository) Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return model.BlogPost{}, err
	}
	return post, nil
}

func (r *BlogPostGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.BlogPost{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BlogPostGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.BlogPost{}).Error
}

func (r *BlogPostGormRepository) CreateBulk(ctx context.Context, posts []model.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&posts).Error
}
