// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type CatalogService struct {
	db *gorm.DB
}

type SearchParams struct {
	Query     string
	SortBy    string
	SortOrder string
}

// filterField maps a recognized filter name to its predicate kind. The
// set is closed over the product schema; anything outside it is ignored
// by FilterProducts.
type filterField struct {
	name    string
	numeric bool
}

var catalogFilterFields = []filterField{
	{name: "name"},
	{name: "brand"},
	{name: "product_type"},
	{name: "size"},
	{name: "color"},
	{name: "year_of_manufacture", numeric: true},
	{name: "price", numeric: true},
	{name: "rating", numeric: true},
}

var searchSortFields = map[string]string{
	"name":   "name",
	"price":  "price",
	"rating": "rating",
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// SearchProducts matches the query case-insensitively against name,
// brand, and product type. An empty query is an explicit empty result,
// not the full catalog. Results are ordered by one of name/price/rating
// in the requested direction; unknown sort inputs fall back to the
// defaults (name, ascending) and ties keep storage order.
func (s *CatalogService) SearchProducts(params SearchParams) ([]models.Product, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return []models.Product{}, nil
	}

	sortField, ok := searchSortFields[params.SortBy]
	if !ok {
		sortField = "name"
	}
	order := "ASC"
	if params.SortOrder == "desc" {
		order = "DESC"
	}

	term := "%" + strings.ToLower(query) + "%"
	var products []models.Product
	err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(product_type) LIKE ?", term, term, term).
		Order(sortField + " " + order).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

// FilterProducts applies the supplied field=value pairs conjunctively.
// Text fields match as case-insensitive substrings; numeric fields
// require exact equality after parsing, and a value that fails to parse
// drops that filter instead of failing the request. No filters means
// the whole catalog.
func (s *CatalogService) FilterProducts(filters map[string]string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	for _, field := range catalogFilterFields {
		value, ok := filters[field.name]
		if !ok || value == "" {
			continue
		}

		if field.numeric {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			query = query.Where(field.name+" = ?", parsed)
		} else {
			query = query.Where("LOWER("+field.name+") LIKE ?", "%"+strings.ToLower(value)+"%")
		}
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Reviews").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// GetFeaturedProducts returns the homepage strip, best rated first.
func (s *CatalogService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("rating DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}
	return products, nil
}
