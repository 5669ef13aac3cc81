package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"kenyareal/internal/model"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Catalog is the static listing data loaded once at startup.
type Catalog struct {
	Agents     []model.Agent         `json:"agents"`
	Properties []model.Property      `json:"properties"`
	Insights   []model.MarketInsight `json:"insights"`
}

// CatalogRepository serves read-only reference data.
type CatalogRepository interface {
	Properties() []model.Property
	Agents() []model.Agent
	Insights() []model.MarketInsight
}

type catalogRepository struct {
	catalog Catalog
}

// NewCatalogRepository loads the catalog bundled with the binary.
func NewCatalogRepository() (CatalogRepository, error) {
	return decodeCatalog(defaultCatalog)
}

// NewCatalogRepositoryFrom loads a catalog from r, e.g. a file supplied at deploy time.
func NewCatalogRepositoryFrom(r io.Reader) (CatalogRepository, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return decodeCatalog(raw)
}

func decodeCatalog(raw []byte) (CatalogRepository, error) {
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	agents := make(map[string]*model.Agent, len(c.Agents))
	for i := range c.Agents {
		agents[c.Agents[i].ID] = &c.Agents[i]
	}
	for i := range c.Properties {
		p := &c.Properties[i]
		agent, ok := agents[p.AgentID]
		if !ok {
			return nil, fmt.Errorf("property %s references unknown agent %q", p.ID, p.AgentID)
		}
		p.Agent = agent
	}
	return &catalogRepository{catalog: c}, nil
}

// Properties returns a copy of the listing slice in catalog order.
func (r *catalogRepository) Properties() []model.Property {
	out := make([]model.Property, len(r.catalog.Properties))
	copy(out, r.catalog.Properties)
	return out
}

func (r *catalogRepository) Agents() []model.Agent {
	out := make([]model.Agent, len(r.catalog.Agents))
	copy(out, r.catalog.Agents)
	return out
}

func (r *catalogRepository) Insights() []model.MarketInsight {
	out := make([]model.MarketInsight, len(r.catalog.Insights))
	copy(out, r.catalog.Insights)
	return out
}
