package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

type fakeProductUsecase struct {
	lastSearchTerm string
	searchResults  []*model.Product
}

func (f *fakeProductUsecase) SubmitProduct(_ context.Context, _ *model.Product) (*repository.InsertResult, error) {
	return &repository.InsertResult{InsertedID: "fake"}, nil
}

func (f *fakeProductUsecase) GetProduct(_ context.Context, _ string) (*model.Product, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductUsecase) ListProducts(_ context.Context) ([]*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUsecase) ListProductsByOwner(_ context.Context, _ string) ([]*model.Product, error) {
	return nil, nil
}

func (f *fakeProductUsecase) Search(_ context.Context, term string) ([]*model.Product, error) {
	f.lastSearchTerm = term
	return f.searchResults, nil
}

func (f *fakeProductUsecase) UpdateProduct(_ context.Context, _ string, _ repository.UpdateProductParams) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{}, nil
}

func (f *fakeProductUsecase) DeleteProduct(_ context.Context, _ string) (*repository.DeleteResult, error) {
	return &repository.DeleteResult{}, nil
}

func TestSearchPassesTermThrough(t *testing.T) {
	uc := &fakeProductUsecase{
		searchResults: []*model.Product{
			{
				ProductName: "Zenbook",
				Tags:        []model.ProductTag{{Text: "Laptop"}},
				Status:      model.ProductStatusAccepted,
			},
		},
	}
	h := NewProductHandler(uc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/product/search?search=lap", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lap", uc.lastSearchTerm)

	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Zenbook", products[0].ProductName)
}

func TestGetUnknownProductAnswersNull(t *testing.T) {
	h := NewProductHandler(&fakeProductUsecase{}, testLogger())

	r := chi.NewRouter()
	r.Get("/products/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/products/656f1e0c2f9b2a0001000000", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}
