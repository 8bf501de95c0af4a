package service

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (c *categoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.categoryRepository.GetAllCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("category listing failed")
		return nil, fmt.Errorf("category listing failed: %w", err)
	}

	return categories, nil
}
