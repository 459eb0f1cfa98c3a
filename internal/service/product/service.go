package product

import (
	"context"
	"sort"
	"strings"
	"time"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const catalogCacheKey = "catalog"

// Service serves catalog reads through a small TTL cache. Cart and checkout
// code goes straight to the repository for prices; only the listing surface
// is cached.
type Service struct {
	repo  productrepo.Repository
	cache *expirable.LRU[string, []domain.Product]
}

func New(repo productrepo.Repository, cacheTTL time.Duration) *Service {
	var cache *expirable.LRU[string, []domain.Product]
	if cacheTTL > 0 {
		cache = expirable.NewLRU[string, []domain.Product](8, nil, cacheTTL)
	}
	return &Service{repo: repo, cache: cache}
}

// Filter narrows and orders a catalog listing.
type Filter struct {
	Category string
	Search   string
	Sort     string
}

func (s *Service) List(ctx context.Context, filter Filter) ([]domain.Product, error) {
	products, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, filter.Sort)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories lists the distinct category names in the catalog, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	res, err := s.repo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Purge()
	}
	return res, nil
}

func (s *Service) catalog(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(catalogCacheKey); ok {
			return cached, nil
		}
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(catalogCacheKey, products)
	}
	return products, nil
}

func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, key string) {
	switch key {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case "rating":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	}
}
