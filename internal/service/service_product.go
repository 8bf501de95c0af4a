// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/models"
)

// productService is the concrete implementation of ProductService.
// It coordinates the two-step product write: the optional image file is
// persisted first, then the row is inserted referencing the stored URL.
type productService struct {
	productRepository store.ProductRepository
	images            store.ImageFileStorage
	validator         validatorContract

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, images store.ImageFileStorage, validator validatorContract, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		images:            images,
		validator:         validator,
		logger:            logger,
	}
}

// CreateProduct validates the payload, stores the optional uploaded image,
// and inserts the product row.
//
// When an image upload is present its stored URL overrides any image_url
// field from the payload. If the row insert fails after the file was
// written, the file is removed so a rejected request leaves no orphan on
// disk.
func (p *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest, image *models.ImageUpload) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("productname", req.ProductName).Msg("invalid product payload")
		return models.Product{}, err
	}

	imageURL := req.ImageURL
	var storedImage string
	if image != nil {
		url, err := p.images.SaveImage(ctx, image.Filename, image.Content)
		if err != nil {
			log.Err(err).Str("filename", image.Filename).Msg("saving product image failed")
			return models.Product{}, fmt.Errorf("%w: %w", ErrSavingImage, err)
		}
		storedImage = url
		imageURL = &storedImage
	}

	product := models.Product{
		ProductName: req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    imageURL,
	}

	productID, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		if storedImage != "" {
			if removeErr := p.images.Remove(ctx, storedImage); removeErr != nil {
				log.Err(removeErr).Str("image_url", storedImage).Msg("removing orphaned product image failed")
			}
		}
		log.Err(err).Str("productname", req.ProductName).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	product.ProductID = productID
	return product, nil
}

// GetProductByID returns a single product, or a wrapped
// store.ErrProductNotFound.
func (p *productService) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	product, err := p.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("product_id", productID).Msg("product search by id failed")
		return models.Product{}, fmt.Errorf("product search by id failed: %w", err)
	}

	return product, nil
}

// GetAllProducts returns the whole catalog, or a wrapped
// store.ErrNoProductsFound when it is empty.
func (p *productService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := p.productRepository.GetAllProducts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("product listing failed")
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

// GetProductsByCategory returns the catalog filtered by category, or a
// wrapped store.ErrNoProductsFound when nothing matches.
func (p *productService) GetProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	products, err := p.productRepository.GetProductsByCategory(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("category_id", categoryID).Msg("product listing by category failed")
		return nil, fmt.Errorf("product listing by category failed: %w", err)
	}

	return products, nil
}

// ResolveImage maps a stored filename to its absolute on-disk path.
func (p *productService) ResolveImage(filename string) (string, error) {
	return p.images.Resolve(filename)
}
