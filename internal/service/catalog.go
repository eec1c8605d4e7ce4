package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/transport"
	"github.com/Skotchmaster/shop_api/internal/util"
)

// ProductIndex is implemented by es.ProductIndex.
type ProductIndex interface {
	IndexProduct(ctx context.Context, prod *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, from, size int) ([]models.Product, error)
}

type CatalogService struct {
	Repo      *repo.GormRepo
	Publisher events.Publisher
	Index     ProductIndex
}

func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, f)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return prod, err
}

// CreateProduct accepts partial input: absent price is 0, absent in_stock is
// true, absent strings are empty. No further validation is applied.
func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	prod := &models.Product{InStock: true}
	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		prod.Price = *req.Price
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.InStock != nil {
		prod.InStock = *req.InStock
	}

	prod, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, "product_created", prod)
	return prod, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uint) (*models.Product, error) {
	prod, err := s.Repo.PatchProduct(ctx, req, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	s.afterWrite(ctx, "product_updated", prod)
	return prod, nil
}

// DeleteProduct hard-deletes the row. Order and cart rows pointing at it are
// left in place.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("index_product_error", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Publisher, events.TopicProduct, strconv.FormatUint(uint64(id), 10),
		events.New("product_deleted", map[string]any{"productID": id}))
	return nil
}

// SearchProducts prefers the search index and falls back to the store when
// the index is absent or failing. Page is 1-based; size is capped by
// util.MaxPageSize.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, page, size int) ([]models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, fmt.Errorf("empty query: %w", ErrValidation)
	}
	offset, limit := util.Calculate(page, size)

	if s.Index != nil {
		items, err := s.Index.Search(ctx, q, offset, limit)
		if err == nil {
			return items, nil
		}
		logging.FromContext(ctx).Warn("search_index_error", "reason", "falling back to store", "error", err)
	}
	return s.Repo.SearchProducts(ctx, q, offset, limit)
}

func (s *CatalogService) afterWrite(ctx context.Context, kind string, prod *models.Product) {
	if s.Index != nil {
		if err := s.Index.IndexProduct(ctx, prod); err != nil {
			logging.FromContext(ctx).Error("index_product_error", "product_id", prod.ID, "error", err)
		}
	}
	publish(ctx, s.Publisher, events.TopicProduct, strconv.FormatUint(uint64(prod.ID), 10),
		events.New(kind, map[string]any{
			"productID": prod.ID,
			"name":      prod.Name,
			"price":     prod.Price,
			"in_stock":  prod.InStock,
		}))
}
