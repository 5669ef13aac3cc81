package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"kenyareal/internal/cache"
	"kenyareal/internal/errors"
	"kenyareal/internal/model"
	"kenyareal/internal/repository"
)

const propertyCacheTTL = 5 * time.Minute

// Sort orders accepted by ListProperties.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRelevance = "relevance"
)

// StatusAll disables the listing status filter.
const StatusAll = "all"

// PropertyFilter narrows a property search. Zero values leave a dimension unfiltered.
type PropertyFilter struct {
	Query    string  `query:"q"`
	Location string  `query:"location"`
	Type     string  `query:"type"`
	Status   string  `query:"status"`
	Bedrooms int     `query:"bedrooms"`
	PriceMin float64 `query:"priceMin"`
	PriceMax float64 `query:"priceMax"`
	Sort     string  `query:"sort"`
}

// CatalogStats summarizes the catalog for the admin dashboard.
type CatalogStats struct {
	Properties int `json:"properties"`
	ForSale    int `json:"forSale"`
	ForRent    int `json:"forRent"`
	Featured   int `json:"featured"`
	Agents     int `json:"agents"`
	Areas      int `json:"areas"`
}

// CatalogService answers read-only queries over properties, agents and market insights.
type CatalogService interface {
	ListProperties(ctx context.Context, f PropertyFilter) []model.Property
	GetProperty(ctx context.Context, id string) (*model.Property, error)
	FeaturedProperties(ctx context.Context) []model.Property
	PropertiesByIDs(ctx context.Context, ids []string) []model.Property
	PropertiesByAgentEmail(ctx context.Context, email string) []model.Property
	ListAgents(ctx context.Context, query, specialty string) []model.Agent
	Specialties(ctx context.Context) []string
	GetAgent(ctx context.Context, id string) (*model.Agent, error)
	MarketInsights(ctx context.Context) []model.MarketInsight
	MarketInsight(ctx context.Context, area string) (*model.MarketInsight, error)
	Stats(ctx context.Context) CatalogStats
}

type catalogService struct {
	repo  repository.CatalogRepository
	cache *cache.Client
}

// NewCatalogService creates a catalog service. cache may be nil.
func NewCatalogService(repo repository.CatalogRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *catalogService) cacheKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

func (s *catalogService) ListProperties(_ context.Context, f PropertyFilter) []model.Property {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	out := make([]model.Property, 0)
	for _, p := range s.repo.Properties() {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location.Area), location) {
			continue
		}
		if f.Type != "" && string(p.Type) != f.Type {
			continue
		}
		if f.Status != "" && f.Status != StatusAll && string(p.Status) != f.Status {
			continue
		}
		if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
			continue
		}
		if f.PriceMin > 0 && p.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && p.Price > f.PriceMax {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortRelevance:
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// GetProperty retrieves a property by ID with caching.
func (s *catalogService) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Property
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	for _, p := range s.repo.Properties() {
		if p.ID != id {
			continue
		}
		if payload, err := json.Marshal(p); err == nil {
			_ = s.cache.Set(ctx, s.cacheKey(id), payload, propertyCacheTTL)
		}
		return &p, nil
	}
	return nil, errors.ErrPropertyNotFound
}

func (s *catalogService) FeaturedProperties(_ context.Context) []model.Property {
	out := make([]model.Property, 0)
	for _, p := range s.repo.Properties() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PropertiesByIDs keeps the order of ids and skips unknown ones.
func (s *catalogService) PropertiesByIDs(_ context.Context, ids []string) []model.Property {
	byID := make(map[string]model.Property)
	for _, p := range s.repo.Properties() {
		byID[p.ID] = p
	}
	out := make([]model.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) PropertiesByAgentEmail(_ context.Context, email string) []model.Property {
	out := make([]model.Property, 0)
	for _, p := range s.repo.Properties() {
		if p.Agent != nil && model.EmailEquals(p.Agent.Email, email) {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) ListAgents(_ context.Context, query, specialty string) []model.Agent {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]model.Agent, 0)
	for _, a := range s.repo.Agents() {
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Company), query) {
			continue
		}
		if specialty != "" && !a.HasSpecialty(specialty) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Specialties lists each specialty once, in first-seen order.
func (s *catalogService) Specialties(_ context.Context) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range s.repo.Agents() {
		for _, sp := range a.Specialties {
			if _, ok := seen[sp]; ok {
				continue
			}
			seen[sp] = struct{}{}
			out = append(out, sp)
		}
	}
	return out
}

func (s *catalogService) GetAgent(_ context.Context, id string) (*model.Agent, error) {
	for _, a := range s.repo.Agents() {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.ErrAgentNotFound
}

func (s *catalogService) MarketInsights(_ context.Context) []model.MarketInsight {
	return s.repo.Insights()
}

func (s *catalogService) MarketInsight(_ context.Context, area string) (*model.MarketInsight, error) {
	for _, mi := range s.repo.Insights() {
		if strings.EqualFold(mi.Area, area) {
			return &mi, nil
		}
	}
	return nil, errors.ErrInsightNotFound
}

func (s *catalogService) Stats(_ context.Context) CatalogStats {
	stats := CatalogStats{
		Agents: len(s.repo.Agents()),
		Areas:  len(s.repo.Insights()),
	}
	for _, p := range s.repo.Properties() {
		stats.Properties++
		switch p.Status {
		case model.StatusForSale:
			stats.ForSale++
		case model.StatusForRent:
			stats.ForRent++
		}
		if p.Featured {
			stats.Featured++
		}
	}
	return stats
}
