package service

import (
	"github.com/mlevkova/bijoux-shop/internal/adapter"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/internal/validators"
)

type Services struct {
	UserService     UserService
	ProductService  ProductService
	CategoryService CategoryService
	PaymentService  PaymentService
}

func NewServices(repos *store.Repositories, images store.ImageFileStorage, provider adapter.PaymentProvider, validator validators.Validator, logger *logger.Logger) *Services {
	return &Services{
		UserService:     NewUserService(repos.UserRepository, validator, logger),
		ProductService:  NewProductService(repos.ProductRepository, images, validator, logger),
		CategoryService: NewCategoryService(repos.CategoryRepository, logger),
		PaymentService:  NewPaymentService(provider, validator, logger),
	}
}
