// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/mock"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/internal/validators"
	"github.com/mlevkova/bijoux-shop/models"
)

func newTestProductService(t *testing.T, ctrl *gomock.Controller) (ProductService, *mock.MockProductRepository, *mock.MockImageFileStorage) {
	t.Helper()
	repo := mock.NewMockProductRepository(ctrl)
	images := mock.NewMockImageFileStorage(ctrl)
	svc := NewProductService(repo, images, validators.NewRequestValidator(), logger.Nop())
	return svc, repo, images
}

func validProductRequest() models.CreateProductRequest {
	return models.CreateProductRequest{
		ProductName: "Silver Ring",
		Description: "A ring made of silver",
		Price:       19.99,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success without image", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		repo.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(int64(11), nil)

		got, err := svc.CreateProduct(context.Background(), validProductRequest(), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ProductID)
		assert.Nil(t, got.ImageURL)
	})

	t.Run("success with image stores file first", func(t *testing.T) {
		svc, repo, images := newTestProductService(t, ctrl)

		upload := &models.ImageUpload{Filename: "ring.png", Content: strings.NewReader("png-bytes")}

		gomock.InOrder(
			images.EXPECT().
				SaveImage(gomock.Any(), "ring.png", upload.Content).
				Return("/uploads/abc_ring.png", nil),
			repo.EXPECT().
				CreateProduct(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, product models.Product) (int64, error) {
					require.NotNil(t, product.ImageURL)
					assert.Equal(t, "/uploads/abc_ring.png", *product.ImageURL)
					return int64(12), nil
				}),
		)

		got, err := svc.CreateProduct(context.Background(), validProductRequest(), upload)

		require.NoError(t, err)
		assert.Equal(t, int64(12), got.ProductID)
		require.NotNil(t, got.ImageURL)
		assert.Equal(t, "/uploads/abc_ring.png", *got.ImageURL)
	})

	t.Run("failed insert removes the stored image", func(t *testing.T) {
		svc, repo, images := newTestProductService(t, ctrl)

		upload := &models.ImageUpload{Filename: "ring.png", Content: strings.NewReader("png-bytes")}

		gomock.InOrder(
			images.EXPECT().
				SaveImage(gomock.Any(), "ring.png", upload.Content).
				Return("/uploads/abc_ring.png", nil),
			repo.EXPECT().
				CreateProduct(gomock.Any(), gomock.Any()).
				Return(int64(0), store.ErrCategoryNotFound),
			images.EXPECT().
				Remove(gomock.Any(), "/uploads/abc_ring.png").
				Return(nil),
		)

		_, err := svc.CreateProduct(context.Background(), validProductRequest(), upload)

		require.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("rejected image never reaches the repository", func(t *testing.T) {
		svc, _, images := newTestProductService(t, ctrl)

		upload := &models.ImageUpload{Filename: "malware.exe", Content: strings.NewReader("nope")}

		images.EXPECT().
			SaveImage(gomock.Any(), "malware.exe", upload.Content).
			Return("", store.ErrInvalidImageFormat)

		_, err := svc.CreateProduct(context.Background(), validProductRequest(), upload)

		require.ErrorIs(t, err, ErrSavingImage)
		require.ErrorIs(t, err, store.ErrInvalidImageFormat)
	})

	t.Run("invalid payload never touches storage", func(t *testing.T) {
		svc, _, _ := newTestProductService(t, ctrl)

		req := validProductRequest()
		req.Price = 0

		_, err := svc.CreateProduct(context.Background(), req, nil)

		require.ErrorIs(t, err, validators.ErrProductFieldsRequired)
	})
}

func TestProductService_GetProductByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		want := models.Product{ProductID: 5, ProductName: "Silver Ring", Price: 19.99}
		repo.EXPECT().GetProductByID(gomock.Any(), int64(5)).Return(want, nil)

		got, err := svc.GetProductByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found passes through", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		repo.EXPECT().GetProductByID(gomock.Any(), int64(404)).Return(models.Product{}, store.ErrProductNotFound)

		_, err := svc.GetProductByID(context.Background(), 404)

		require.ErrorIs(t, err, store.ErrProductNotFound)
	})
}

func TestProductService_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("all products", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		want := []models.Product{{ProductID: 1}, {ProductID: 2}}
		repo.EXPECT().GetAllProducts(gomock.Any()).Return(want, nil)

		got, err := svc.GetAllProducts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty catalog passes through", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		repo.EXPECT().GetAllProducts(gomock.Any()).Return(nil, store.ErrNoProductsFound)

		_, err := svc.GetAllProducts(context.Background())

		require.ErrorIs(t, err, store.ErrNoProductsFound)
	})

	t.Run("by category", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		want := []models.Product{{ProductID: 3}}
		repo.EXPECT().GetProductsByCategory(gomock.Any(), int64(2)).Return(want, nil)

		got, err := svc.GetProductsByCategory(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		svc, repo, _ := newTestProductService(t, ctrl)

		dbErr := errors.New("connection reset")
		repo.EXPECT().GetProductsByCategory(gomock.Any(), int64(2)).Return(nil, dbErr)

		_, err := svc.GetProductsByCategory(context.Background(), 2)

		require.ErrorIs(t, err, dbErr)
	})
}

func TestProductService_ResolveImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, images := newTestProductService(t, ctrl)

	images.EXPECT().Resolve("ring.png").Return("/srv/uploads/ring.png", nil)

	path, err := svc.ResolveImage("ring.png")

	require.NoError(t, err)
	assert.Equal(t, "/srv/uploads/ring.png", path)
}
