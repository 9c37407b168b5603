package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecogood/internal/domain/model"
	repo "ecogood/internal/repository"
)

func newSyncUsecaseForTest() (*AdminSyncUsecase, *fakeTxRepos, *mockBlobStore, *mockAuditLogRepo) {
	tx, repos := newFakeTx()
	blob := new(mockBlobStore)
	audit := new(mockAuditLogRepo)
	uc := NewAdminSyncUsecase(tx, repos.products, repos.posts, blob, audit, nil)
	return uc, repos, blob, audit
}

func TestSyncAllDataToStore_OverwritesEverything(t *testing.T) {
	uc, repos, _, audit := newSyncUsecaseForTest()
	ctx := context.Background()

	data := SiteData{
		Products: []model.Product{{Name: "Bamboo Brush", SKU: "ECO-BAM-000001"}},
		Posts:    []model.BlogPost{{Title: "Going plastic free"}, {Title: "Compost 101"}},
	}

	repos.products.On("DeleteAll", ctx).Return(nil)
	repos.products.On("CreateBulk", ctx, data.Products).Return(nil)
	repos.posts.On("DeleteAll", ctx).Return(nil)
	repos.posts.On("CreateBulk", ctx, data.Posts).Return(nil)
	audit.On("Create", ctx, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionSyncData && l.ActorUserID == 9
	})).Return(nil)

	res, err := uc.SyncAllDataToStore(ctx, 9, data)

	assert.NoError(t, err)
	assert.Equal(t, SyncResult{Products: 1, Posts: 2}, res)
	repos.products.AssertExpectations(t)
	repos.posts.AssertExpectations(t)
}

func TestSyncAllDataToStore_FailureRollsBack(t *testing.T) {
	uc, repos, _, _ := newSyncUsecaseForTest()
	ctx := context.Background()

	repos.products.On("DeleteAll", ctx).Return(nil)
	repos.products.On("CreateBulk", ctx, mock.Anything).Return(errors.New("duplicate sku"))

	_, err := uc.SyncAllDataToStore(ctx, 9, SiteData{
		Products: []model.Product{{Name: "x"}},
	})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	repos.posts.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestSaveBlob_KeyRequired(t *testing.T) {
	uc, _, _, _ := newSyncUsecaseForTest()

	err := uc.SaveBlob(context.Background(), " ", []byte(`{}`))

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestLoadBlob_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		storeErr   error
		wantStatus int
		wantMsg    string
	}{
		{"timeout", repo.ErrBlobTimeout, http.StatusGatewayTimeout, "timeout"},
		{"missing key", repo.ErrBlobNotFound, http.StatusNotFound, "not found"},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError, "store error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, blob, _ := newSyncUsecaseForTest()
			ctx := context.Background()

			blob.On("Load", ctx, "site.json").Return(nil, tc.storeErr)

			_, err := uc.LoadBlob(ctx, "site.json")

			he, ok := AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, tc.wantStatus, he.Status)
			assert.Equal(t, tc.wantMsg, he.Message)
		})
	}
}

func TestLoadBlob_ReturnsRawData(t *testing.T) {
	uc, _, blob, _ := newSyncUsecaseForTest()
	ctx := context.Background()

	blob.On("Load", ctx, "site.json").Return([]byte(`{"products":[]}`), nil)

	data, err := uc.LoadBlob(ctx, "site.json")

	assert.NoError(t, err)
	assert.JSONEq(t, `{"products":[]}`, string(data))
}
