package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenyareal/internal/cache"
	"kenyareal/internal/errors"
	"kenyareal/internal/model"
	"kenyareal/internal/repository"
)

func newCatalogService(t *testing.T, c *cache.Client) CatalogService {
	t.Helper()
	repo, err := repository.NewCatalogRepository()
	require.NoError(t, err)
	return NewCatalogService(repo, c)
}

func ids(props []model.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestListProperties_DefaultSortIsNewest(t *testing.T) {
	repo, err := repository.NewCatalogRepositoryFrom(strings.NewReader(`{
		"agents": [{"id": "a"}],
		"properties": [
			{"id": "old", "agentId": "a", "createdAt": "2023-05-01T00:00:00Z"},
			{"id": "new", "agentId": "a", "createdAt": "2024-02-01T00:00:00Z"},
			{"id": "mid", "agentId": "a", "createdAt": "2023-11-01T00:00:00Z"}
		]
	}`))
	require.NoError(t, err)
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	assert.Equal(t, []string{"new", "mid", "old"}, ids(svc.ListProperties(ctx, PropertyFilter{})))
	assert.Equal(t, []string{"old", "new", "mid"}, ids(svc.ListProperties(ctx, PropertyFilter{Sort: SortRelevance})))
}

func TestListProperties(t *testing.T) {
	svc := newCatalogService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter PropertyFilter
		want   []string
	}{
		{"no filters sorts newest first", PropertyFilter{}, []string{"1", "2", "3", "4"}},
		{"relevance keeps catalog order", PropertyFilter{Sort: SortRelevance}, []string{"1", "2", "3", "4"}},
		{"query matches title any case", PropertyFilter{Query: "VILLA"}, []string{"2"}},
		{"location matches area", PropertyFilter{Location: "west"}, []string{"3"}},
		{"type exact", PropertyFilter{Type: "apartment"}, []string{"1", "3"}},
		{"status for-rent", PropertyFilter{Status: "for-rent"}, []string{"3", "4"}},
		{"status all", PropertyFilter{Status: StatusAll}, []string{"1", "2", "3", "4"}},
		{"bedrooms minimum", PropertyFilter{Bedrooms: 3}, []string{"1", "2"}},
		{"price window", PropertyFilter{PriceMin: 100000, PriceMax: 5000000}, []string{"1", "4"}},
		{"price low", PropertyFilter{Sort: SortPriceLow}, []string{"3", "4", "1", "2"}},
		{"price high", PropertyFilter{Sort: SortPriceHigh}, []string{"2", "1", "4", "3"}},
		{"no match", PropertyFilter{Query: "castle"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(svc.ListProperties(ctx, tt.filter)))
		})
	}
}

func TestGetProperty(t *testing.T) {
	svc := newCatalogService(t, nil)

	p, err := svc.GetProperty(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "4-Bedroom Villa in Karen", p.Title)
	require.NotNil(t, p.Agent)
	assert.Equal(t, "David Kimani", p.Agent.Name)

	_, err = svc.GetProperty(context.Background(), "99")
	assert.ErrorIs(t, err, errors.ErrPropertyNotFound)
}

func TestGetProperty_ReadThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	svc := newCatalogService(t, c)
	ctx := context.Background()

	_, err := svc.GetProperty(ctx, "1")
	require.NoError(t, err)
	require.True(t, mr.Exists("property:1"))
	assert.InDelta(t, propertyCacheTTL.Seconds(), mr.TTL("property:1").Seconds(), 1)

	// a cached entry is served without consulting the catalog
	require.NoError(t, mr.Set("property:1", `{"id":"1","title":"cached"}`))
	p, err := svc.GetProperty(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "cached", p.Title)

	mr.FastForward(propertyCacheTTL + time.Second)
	mr.Close()
	p, err = svc.GetProperty(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "3-Bedroom Modern Apartment in Kilimani", p.Title)
}

func TestFeaturedAndByIDs(t *testing.T) {
	svc := newCatalogService(t, nil)
	ctx := context.Background()

	assert.Equal(t, []string{"1", "2"}, ids(svc.FeaturedProperties(ctx)))
	assert.Equal(t, []string{"3", "1"}, ids(svc.PropertiesByIDs(ctx, []string{"3", "missing", "1"})))
	assert.Equal(t, []string{"1", "3"}, ids(svc.PropertiesByAgentEmail(ctx, "Sarah@KenyaRealEstate.co.ke")))
	assert.Empty(t, svc.PropertiesByAgentEmail(ctx, "agent@example.com"))
}

func TestListAgents(t *testing.T) {
	svc := newCatalogService(t, nil)
	ctx := context.Background()

	names := func(agents []model.Agent) []string {
		out := make([]string, 0, len(agents))
		for _, a := range agents {
			out = append(out, a.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Sarah Wanjiku", "David Kimani"}, names(svc.ListAgents(ctx, "", "")))
	assert.Equal(t, []string{"David Kimani"}, names(svc.ListAgents(ctx, "coastal", "")))
	assert.Equal(t, []string{"Sarah Wanjiku"}, names(svc.ListAgents(ctx, "wanjiku", "")))
	assert.Equal(t, []string{"Sarah Wanjiku"}, names(svc.ListAgents(ctx, "", "Luxury Homes")))
	assert.Empty(t, svc.ListAgents(ctx, "", "luxury homes"))
}

func TestSpecialtiesAndAgent(t *testing.T) {
	svc := newCatalogService(t, nil)
	ctx := context.Background()

	assert.Equal(t, []string{"Luxury Homes", "Commercial Properties", "Residential Sales", "Investment Properties"}, svc.Specialties(ctx))

	a, err := svc.GetAgent(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Coastal Properties Ltd", a.Company)

	_, err = svc.GetAgent(ctx, "9")
	assert.ErrorIs(t, err, errors.ErrAgentNotFound)
}

func TestMarketInsights(t *testing.T) {
	svc := newCatalogService(t, nil)
	ctx := context.Background()

	assert.Len(t, svc.MarketInsights(ctx), 3)

	mi, err := svc.MarketInsight(ctx, "karen")
	require.NoError(t, err)
	assert.Equal(t, "Karen", mi.Area)

	_, err = svc.MarketInsight(ctx, "Mombasa")
	assert.ErrorIs(t, err, errors.ErrInsightNotFound)
}

func TestStats(t *testing.T) {
	svc := newCatalogService(t, nil)
	assert.Equal(t, CatalogStats{Properties: 4, ForSale: 2, ForRent: 2, Featured: 2, Agents: 2, Areas: 3}, svc.Stats(context.Background()))
}
