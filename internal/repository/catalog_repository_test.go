package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRepository_Embedded(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	assert.Len(t, repo.Properties(), 4)
	assert.Len(t, repo.Agents(), 2)
	assert.Len(t, repo.Insights(), 3)

	for _, p := range repo.Properties() {
		require.NotNil(t, p.Agent, "property %s", p.ID)
		assert.Equal(t, p.AgentID, p.Agent.ID)
	}
}

func TestNewCatalogRepositoryFrom_UnknownAgent(t *testing.T) {
	_, err := NewCatalogRepositoryFrom(strings.NewReader(`{"agents":[],"properties":[{"id":"1","agentId":"9"}]}`))
	assert.Error(t, err)
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	props := repo.Properties()
	props[0].Title = "changed"
	assert.NotEqual(t, "changed", repo.Properties()[0].Title)
}
