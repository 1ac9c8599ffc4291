package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]Dish{
		{Name: "Lentil Soup", Description: "A hearty soup", Ingredients: []string{"lentils", "carrots"}},
		{Name: "Vegan Burger", Description: "A plant-based burger", Ingredients: []string{"patty", "bun"}},
	})
}

func TestNew_DeduplicatesByName(t *testing.T) {
	c := New([]Dish{
		{Name: "Lentil Soup", Description: "first"},
		{Name: "lentil soup", Description: "second"},
	})

	require.Equal(t, 1, c.Len())
	d, ok := c.Find("Lentil Soup")
	require.True(t, ok)
	assert.Equal(t, "first", d.Description)
}

func TestCatalog_Find(t *testing.T) {
	c := testCatalog()

	d, ok := c.Find("vegan burger")
	require.True(t, ok)
	assert.Equal(t, "Vegan Burger", d.Name)

	_, ok = c.Find("Pizza")
	assert.False(t, ok)
}

func TestCatalog_DishesIsCopy(t *testing.T) {
	c := testCatalog()
	dishes := c.Dishes()
	dishes[0].Name = "changed"

	d, ok := c.Find("Lentil Soup")
	require.True(t, ok)
	assert.Equal(t, "Lentil Soup", d.Name)
}

func TestCatalog_DescriptionList(t *testing.T) {
	got := testCatalog().DescriptionList()

	assert.Equal(t, "- Lentil Soup: A hearty soup\n- Vegan Burger: A plant-based burger", got)
}

func TestCatalog_IngredientList(t *testing.T) {
	got := testCatalog().IngredientList()

	assert.Equal(t, "- Lentil Soup: lentils, carrots\n- Vegan Burger: patty, bun", got)
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 60, c.Len())

	// Every dish carries a description and at least one ingredient so both
	// prompt renderings are complete.
	for _, d := range c.Dishes() {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description, d.Name)
		assert.NotEmpty(t, d.Ingredients, d.Name)
	}

	// Stable ordering matters for deterministic prompts.
	lines := strings.Split(c.DescriptionList(), "\n")
	require.Len(t, lines, 60)
	assert.True(t, strings.HasPrefix(lines[0], "- "))
}
