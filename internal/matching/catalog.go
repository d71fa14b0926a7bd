package matching

import (
	"fmt"
	"slices"

	"idea-match-workers/internal/models"
)

// Catalog is an immutable, ordered registry of idea templates. Declaration
// order is significant: it breaks ties between equally scored ideas.
type Catalog struct {
	ideas []models.IdeaTemplate
	index map[string]int
}

var defaultCatalog = mustCatalog(builtinIdeas())

// NewCatalog builds a catalog from templates in declaration order. IDs must be
// non-empty and unique.
func NewCatalog(ideas []models.IdeaTemplate) (*Catalog, error) {
	c := &Catalog{
		ideas: make([]models.IdeaTemplate, 0, len(ideas)),
		index: make(map[string]int, len(ideas)),
	}
	for _, idea := range ideas {
		if idea.ID == "" {
			return nil, fmt.Errorf("idea %q has no id", idea.Title)
		}
		if _, dup := c.index[idea.ID]; dup {
			return nil, fmt.Errorf("duplicate idea id %q", idea.ID)
		}
		c.index[idea.ID] = len(c.ideas)
		c.ideas = append(c.ideas, cloneTemplate(idea))
	}
	return c, nil
}

func mustCatalog(ideas []models.IdeaTemplate) *Catalog {
	c, err := NewCatalog(ideas)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the built-in catalog shared by the whole process.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func (c *Catalog) Len() int {
	return len(c.ideas)
}

// All returns copies of every template in declaration order.
func (c *Catalog) All() []models.IdeaTemplate {
	out := make([]models.IdeaTemplate, len(c.ideas))
	for i, idea := range c.ideas {
		out[i] = cloneTemplate(idea)
	}
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.ideas))
	for i, idea := range c.ideas {
		ids[i] = idea.ID
	}
	return ids
}

// Lookup returns a copy of the template with the given id.
func (c *Catalog) Lookup(id string) (models.IdeaTemplate, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.IdeaTemplate{}, false
	}
	return cloneTemplate(c.ideas[i]), true
}

// Remaining counts catalog ideas not in excluded.
func (c *Catalog) Remaining(excluded map[string]bool) int {
	n := 0
	for _, idea := range c.ideas {
		if !excluded[idea.ID] {
			n++
		}
	}
	return n
}

func cloneTemplate(t models.IdeaTemplate) models.IdeaTemplate {
	t.RequiredSkills = slices.Clone(t.RequiredSkills)
	t.MVPScope = slices.Clone(t.MVPScope)
	t.SevenDayPlan = slices.Clone(t.SevenDayPlan)
	t.KillCriteria = slices.Clone(t.KillCriteria)
	return t
}
