package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/catalog"
	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
)

// ProductListCache is the read-through cache in front of the product
// collection. The Redis implementation lives in the repository package.
type ProductListCache interface {
	Get(ctx context.Context) ([]models.Product, bool)
	SetAsync(products []models.Product)
}

// CatalogService serves the browse, search and detail flows.
type CatalogService interface {
	ListProducts(ctx context.Context, criteria catalog.Criteria) ([]models.Product, *ServiceError)
	SearchProducts(ctx context.Context, query string) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	repo   repository.ProductRepo
	cache  ProductListCache
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepo, cache ProductListCache, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListProducts fetches the full catalog and applies the filter/sort pipeline
// in memory.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, criteria catalog.Criteria) ([]models.Product, *ServiceError) {
	products, svcErr := s.loadCatalog(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return catalog.Query(products, criteria), nil
}

// SearchProducts runs the free-text search over the unfiltered catalog.
func (s *catalogServiceImpl) SearchProducts(ctx context.Context, query string) ([]models.Product, *ServiceError) {
	products, svcErr := s.loadCatalog(ctx)
	if svcErr != nil {
		return nil, svcErr
	}
	return catalog.Search(products, query), nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch product", zap.String("id", id.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch product")
	}
	if product == nil {
		return nil, errNotFound("Product not found")
	}
	return product, nil
}

func (s *catalogServiceImpl) loadCatalog(ctx context.Context) ([]models.Product, *ServiceError) {
	if s.cache != nil {
		if products, hit := s.cache.Get(ctx); hit {
			return products, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch catalog", zap.Error(err))
		return nil, errInternal("Failed to fetch products")
	}

	if s.cache != nil {
		s.cache.SetAsync(products)
	}
	return products, nil
}
