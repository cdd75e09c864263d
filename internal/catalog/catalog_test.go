package catalog

import (
	"testing"

	"codemaster/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Shape(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())

	for _, e := range c.All() {
		assert.NoError(t, e.Validate(), e.ID)
		assert.NotNil(t, e.UseCases, e.ID)
		assert.NotNil(t, e.Tools, e.ID)
		assert.NotEmpty(t, e.Description.EN, e.ID)
		assert.NotEmpty(t, e.Description.AR, e.ID)
		assert.False(t, e.Synthesized(), e.ID)
	}
}

func TestLookup_NameOrID(t *testing.T) {
	c := Default()

	py, ok := c.Lookup("python")
	require.True(t, ok)
	assert.Equal(t, "python", py.ID)
	assert.Equal(t, types.DifficultyBeginner, py.Difficulty)

	cpp, ok := c.Lookup("c++")
	require.True(t, ok, "lookup by name")
	assert.Equal(t, "cpp", cpp.ID)

	cpp2, ok := c.Lookup("cpp")
	require.True(t, ok, "lookup by id")
	assert.Equal(t, cpp, cpp2)

	_, ok = c.Lookup("zig")
	assert.False(t, ok)

	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestLookup_ExpectsNormalizedQuery(t *testing.T) {
	// Normalization is the resolver's job; the catalog matches exactly.
	_, ok := Default().Lookup("Python")
	assert.False(t, ok)
}

func TestLookup_ReturnsCopies(t *testing.T) {
	c := Default()
	a, _ := c.Lookup("python")
	a.UseCases[0] = "mutated"
	a.Name = "mutated"

	b, _ := c.Lookup("python")
	assert.Equal(t, "Python", b.Name)
	assert.Equal(t, "Data Science", b.UseCases[0])
}

func TestGet(t *testing.T) {
	swift, ok := Default().Get("swift")
	require.True(t, ok)
	assert.Equal(t, "Swift", swift.Name)

	_, ok = Default().Get("Swift")
	assert.False(t, ok)
}

func TestNew_RejectsBadEntries(t *testing.T) {
	good := types.LanguageEntity{
		ID:          "lua",
		Name:        "Lua",
		Difficulty:  types.DifficultyBeginner,
		Description: types.Only(types.LocaleEnglish, "Small scripting language."),
	}

	_, err := New([]types.LanguageEntity{good, good})
	require.Error(t, err, "duplicate ids")
	assert.Contains(t, err.Error(), `duplicate catalog id "lua"`)

	upper := good
	upper.ID = "Lua"
	_, err = New([]types.LanguageEntity{upper})
	assert.Error(t, err, "uppercase id")

	noDesc := good
	noDesc.Description = types.LocalizedText{}
	_, err = New([]types.LanguageEntity{noDesc})
	require.Error(t, err, "empty description")
	assert.Contains(t, err.Error(), "catalog entry: ")
	assert.Contains(t, err.Error(), "description empty in both locales")

	c, err := New([]types.LanguageEntity{good})
	require.NoError(t, err)
	e, _ := c.Get("lua")
	assert.NotNil(t, e.Tools, "normalized on construction")
}
