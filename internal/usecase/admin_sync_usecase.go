package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

// AdminSyncUsecase moves the whole site dataset between the admin
// surface and the stores. Sync is a structural overwrite: no diffing,
// no partial updates; load is always a full scan.
type AdminSyncUsecase struct {
	tx          repo.TransactionManager
	productRepo repo.ProductRepository
	postRepo    repo.BlogPostRepository
	blob        repo.BlobStore
	auditRepo   repo.AuditLogRepository
	logger      *zap.Logger
}

func NewAdminSyncUsecase(
	tx repo.TransactionManager,
	productRepo repo.ProductRepository,
	postRepo repo.BlogPostRepository,
	blob repo.BlobStore,
	auditRepo repo.AuditLogRepository,
	logger *zap.Logger,
) *AdminSyncUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminSyncUsecase{
		tx:          tx,
		productRepo: productRepo,
		postRepo:    postRepo,
		blob:        blob,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// SiteData is the full admin dataset.
type SiteData struct {
	Products []model.Product  `json:"products"`
	Posts    []model.BlogPost `json:"posts"`
}

type SyncResult struct {
	Products int `json:"products"`
	Posts    int `json:"posts"`
}

// SyncAllDataToStore overwrites the persistent store with data.
// Delete-all plus insert runs in one transaction so a failed sync
// leaves the previous content intact.
func (u *AdminSyncUsecase) SyncAllDataToStore(ctx context.Context, adminID int64, data SiteData) (SyncResult, error) {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().DeleteAll(ctx); err != nil {
			return err
		}
		if err := r.Products().CreateBulk(ctx, data.Products); err != nil {
			return err
		}
		if err := r.Posts().DeleteAll(ctx); err != nil {
			return err
		}
		return r.Posts().CreateBulk(ctx, data.Posts)
	})
	if err != nil {
		u.logger.Error("data sync failed", zap.Error(err))
		return SyncResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminID,
		Action:       model.AuditActionSyncData,
		ResourceType: model.AuditResourceDataset,
	})

	return SyncResult{
		Products: len(data.Products),
		Posts:    len(data.Posts),
	}, nil
}

// LoadDataFromStore reads the full dataset back.
func (u *AdminSyncUsecase) LoadDataFromStore(ctx context.Context) (SiteData, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return SiteData{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	posts, err := u.postRepo.ListAll(ctx)
	if err != nil {
		return SiteData{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return SiteData{Products: products, Posts: posts}, nil
}

// ListAuditLogs returns recent admin actions, newest first.
func (u *AdminSyncUsecase) ListAuditLogs(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	logs, err := u.auditRepo.List(ctx, filter)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}

// SaveBlob writes one raw JSON snapshot under key.
func (u *AdminSyncUsecase) SaveBlob(ctx context.Context, key string, data json.RawMessage) error {
	if strings.TrimSpace(key) == "" {
		return NewHTTPError(http.StatusBadRequest, "key is required")
	}
	if len(data) == 0 {
		return NewHTTPError(http.StatusBadRequest, "data is required")
	}

	err := u.blob.Save(ctx, key, data)
	if errors.Is(err, repo.ErrBlobTimeout) {
		return NewHTTPError(http.StatusGatewayTimeout, "timeout")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return nil
}

// LoadBlob reads one raw JSON snapshot by key.
func (u *AdminSyncUsecase) LoadBlob(ctx context.Context, key string) (json.RawMessage, error) {
	if strings.TrimSpace(key) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "key is required")
	}

	data, err := u.blob.Load(ctx, key)
	if errors.Is(err, repo.ErrBlobTimeout) {
		return nil, NewHTTPError(http.StatusGatewayTimeout, "timeout")
	}
	if errors.Is(err, repo.ErrBlobNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return data, nil
}
