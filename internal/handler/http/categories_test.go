package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/models"
)

func TestGetCategories_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, mocks := newTestHandler(t, ctrl)

	mocks.categories.EXPECT().
		GetAllCategories(gomock.Any()).
		Return([]models.Category{
			{CategoryID: 1, CategoryName: "bracelets"},
			{CategoryID: 2, CategoryName: "earrings"},
			{CategoryID: 3, CategoryName: "necklaces"},
			{CategoryID: 4, CategoryName: "other"},
		}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CategoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 4)
	assert.Equal(t, "bracelets", resp.Categories[0].CategoryName)
}

func TestGetCategories_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, mocks := newTestHandler(t, ctrl)

	mocks.categories.EXPECT().GetAllCategories(gomock.Any()).Return(nil, store.ErrNoCategoriesFound)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No categories found")
}
