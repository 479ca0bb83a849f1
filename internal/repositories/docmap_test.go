package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
)

func TestSetFieldsDropsIdentity(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	skill := models.Skill{Category: "Cloud", Items: []string{"AWS"}, Order: 1}
	skill.Stamp("abc", now)

	fields, err := repositories.SetFields(skill)
	require.NoError(t, err)

	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "created_at")
	assert.Contains(t, fields, "updated_at")
	assert.Equal(t, "Cloud", fields["category"])
}

func TestOverlayPreservesIdentity(t *testing.T) {
	created := time.Now().UTC().Truncate(time.Millisecond).Add(-time.Hour)
	cur := models.Skill{Category: "Cloud", Items: []string{"AWS"}, Order: 1}
	cur.Stamp("abc", created)

	later := time.Now().UTC().Truncate(time.Millisecond)
	next := models.Skill{Category: "Cloud Platforms", Items: []string{"AWS", "GCP"}, Order: 2}
	next.Stamp("should-be-ignored", later)

	fields, err := repositories.SetFields(next)
	require.NoError(t, err)
	merged, err := repositories.Overlay(cur, fields)
	require.NoError(t, err)

	assert.Equal(t, "abc", merged.ID)
	assert.True(t, merged.CreatedAt.Equal(created))
	assert.True(t, merged.UpdatedAt.Equal(later))
	assert.Equal(t, "Cloud Platforms", merged.Category)
	assert.Equal(t, []string{"AWS", "GCP"}, merged.Items)
	assert.Equal(t, 2, merged.Order)
}
