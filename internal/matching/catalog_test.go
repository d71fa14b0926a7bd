package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{
		"niche-newsletter",
		"productized-service",
		"micro-saas",
		"paid-community",
		"template-shop",
	}, c.IDs())

	newsletter, ok := c.Lookup("niche-newsletter")
	require.True(t, ok)
	assert.Equal(t, "Niche Newsletter Business", newsletter.Title)
	assert.Equal(t, "$0-$100", newsletter.CapitalNeeded)
	assert.Equal(t, models.ComplexitySimple, newsletter.ExecutionComplexity)
	assert.Equal(t, models.RiskLow, newsletter.RiskLevel)
	assert.True(t, newsletter.RequiresSkill("Writing"))

	for _, idea := range c.All() {
		assert.NotEmpty(t, idea.Title, idea.ID)
		assert.Len(t, idea.SevenDayPlan, 7, idea.ID)
		assert.NotEmpty(t, idea.KillCriteria, idea.ID)
	}
}

func TestCatalog_LookupUnknown(t *testing.T) {
	_, ok := DefaultCatalog().Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := DefaultCatalog()

	all := c.All()
	all[0].Title = "changed"
	all[0].RequiredSkills[0] = "changed"

	looked, _ := c.Lookup(all[0].ID)
	looked.MVPScope[0] = "changed"

	fresh, _ := c.Lookup("niche-newsletter")
	assert.Equal(t, "Niche Newsletter Business", fresh.Title)
	assert.Equal(t, "Writing", fresh.RequiredSkills[0])
	assert.NotEqual(t, "changed", fresh.MVPScope[0])
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name  string
		ideas []models.IdeaTemplate
		err   string
	}{
		{
			name:  "missing id",
			ideas: []models.IdeaTemplate{{Title: "Nameless"}},
			err:   `idea "Nameless" has no id`,
		},
		{
			name:  "duplicate id",
			ideas: []models.IdeaTemplate{{ID: "a"}, {ID: "b"}, {ID: "a"}},
			err:   `duplicate idea id "a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.ideas)
			assert.Nil(t, c)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestCatalog_Remaining(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 5, c.Remaining(nil))
	assert.Equal(t, 3, c.Remaining(ExcludeSet([]string{"micro-saas", "template-shop", "unknown"})))
	assert.Equal(t, 0, c.Remaining(ExcludeSet(c.IDs())))
}
