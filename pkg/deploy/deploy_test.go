package deploy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/services"
)

func TestGenerateDeployID(t *testing.T) {
	re := regexp.MustCompile(`^dep-\d{8}T\d{6}-[0-9a-f]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateDeployID()
		assert.Regexp(t, re, id)
		assert.False(t, seen[id], "duplicate deploy id %s", id)
		seen[id] = true
	}
}

func strPtr(s string) *string { return &s }

func TestSharedLastHealthy(t *testing.T) {
	t.Run("all same", func(t *testing.T) {
		image, err := sharedLastHealthy([]*ent.Instance{
			{Subdomain: "a", LastHealthyImage: strPtr("app:v1")},
			{Subdomain: "b", LastHealthyImage: strPtr("app:v1")},
		})
		require.NoError(t, err)
		assert.Equal(t, "app:v1", image)
	})

	t.Run("mixed images rejected", func(t *testing.T) {
		_, err := sharedLastHealthy([]*ent.Instance{
			{Subdomain: "a", LastHealthyImage: strPtr("app:v1")},
			{Subdomain: "b", LastHealthyImage: strPtr("app:v2")},
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "different")
	})

	t.Run("missing last healthy rejected", func(t *testing.T) {
		_, err := sharedLastHealthy([]*ent.Instance{
			{Subdomain: "a", LastHealthyImage: nil},
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestRingOrder(t *testing.T) {
	instances := []*ent.Instance{
		{DeployRing: 2},
		{DeployRing: 0},
		{DeployRing: 2},
		{DeployRing: 1},
	}
	assert.Equal(t, []int{0, 1, 2}, ringOrder(instances))
	assert.Len(t, byRing(instances, 2), 2)
	assert.Len(t, byRing(instances, 0), 1)
	assert.Empty(t, byRing(instances, 5))
}
