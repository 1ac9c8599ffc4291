// Package menu provides the immutable restaurant catalog consulted when
// building prompts and validating extracted orders. The catalog is read-only
// reference data and is safely shared across concurrent sessions without
// locking.
package menu

import (
	"fmt"
	"strings"
)

// Dish is one immutable catalog entry. Name is unique within a catalog.
type Dish struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
}

// Catalog is an ordered, immutable list of dishes. Ordering is stable by
// creation order so prompt text is deterministic for a given catalog.
type Catalog struct {
	dishes []Dish
	byName map[string]int
}

// New builds a catalog from the given dishes, preserving order. Duplicate
// names keep the first occurrence.
func New(dishes []Dish) *Catalog {
	c := &Catalog{
		dishes: make([]Dish, 0, len(dishes)),
		byName: make(map[string]int, len(dishes)),
	}
	for _, d := range dishes {
		key := strings.ToLower(d.Name)
		if _, exists := c.byName[key]; exists {
			continue
		}
		c.byName[key] = len(c.dishes)
		c.dishes = append(c.dishes, d)
	}
	return c
}

// Dishes returns a copy of all dishes in creation order.
func (c *Catalog) Dishes() []Dish {
	dishes := make([]Dish, len(c.dishes))
	copy(dishes, c.dishes)
	return dishes
}

// Len returns the number of dishes.
func (c *Catalog) Len() int { return len(c.dishes) }

// Find looks a dish up by name (case-insensitive).
func (c *Catalog) Find(name string) (Dish, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Dish{}, false
	}
	return c.dishes[i], true
}

// DescriptionList renders the catalog as "- name: description" lines for
// interpolation into the order prompt.
func (c *Catalog) DescriptionList() string {
	var b strings.Builder
	for i, d := range c.dishes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", d.Name, d.Description)
	}
	return b.String()
}

// IngredientList renders the catalog as "- name: ingredient, ..." lines for
// interpolation into the analysis prompt.
func (c *Catalog) IngredientList() string {
	var b strings.Builder
	for i, d := range c.dishes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", d.Name, strings.Join(d.Ingredients, ", "))
	}
	return b.String()
}
