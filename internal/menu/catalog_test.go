package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	require.Equal(t, 4, c.Len())

	ids := make([]string, 0, c.Len())
	counts := make([]int, 0, c.Len())
	for i, cat := range c.Categories {
		ids = append(ids, cat.ID)
		counts = append(counts, c.ItemCount(i))
	}
	assert.Equal(t, []string{"home", "work", "about", "contact"}, ids)
	assert.Equal(t, []int{2, 3, 1, 2}, counts)
	assert.Equal(t, "hello@portfolio.dev", c.Contact)
	for _, p := range Panels {
		assert.NotEmpty(t, c.Content(p).Body, "panel %s", p)
	}
}

func TestResolveStartOpensWork(t *testing.T) {
	c := Default()
	p, ok := c.Resolve(0, 0)
	require.True(t, ok)
	assert.Equal(t, PanelWork, p)

	p, ok = c.Resolve(0, 1)
	require.True(t, ok)
	assert.Equal(t, PanelAbout, p)

	_, ok = c.Resolve(2, 5)
	assert.False(t, ok)
	_, ok = c.Resolve(9, 0)
	assert.False(t, ok)
}

func TestResolveEmptyActionFallsBackToCategory(t *testing.T) {
	c, err := Parse([]byte(`
categories:
  - id: contact
    label: Contact
    items:
      - id: email
        title: Email
`))
	require.NoError(t, err)
	p, ok := c.Resolve(0, 0)
	require.True(t, ok)
	assert.Equal(t, PanelContact, p)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	cases := map[string]string{
		"no categories": `categories: []`,
		"empty category": `
categories:
  - id: home
    label: Home
    items: []`,
		"unknown action": `
categories:
  - id: home
    label: Home
    items:
      - id: x
        title: X
        action: settings`,
		"unresolvable fallback": `
categories:
  - id: misc
    label: Misc
    items:
      - id: x
        title: X`,
		"duplicate category": `
categories:
  - id: work
    label: Work
    items: [{id: a, title: A}]
  - id: work
    label: Again
    items: [{id: b, title: B}]`,
		"unknown panel": `
categories:
  - id: work
    label: Work
    items: [{id: a, title: A}]
panels:
  settings: {title: Settings}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsFileAndDefaultsOnEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - id: about
    label: About
    items: [{id: bio, title: Bio, action: about}]
`), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindCategory(t *testing.T) {
	c := Default()
	cases := []struct {
		query string
		want  int
		ok    bool
	}{
		{"work", 1, true},
		{"ABOUT", 2, true},
		{"Contact", 3, true},
		{"cntct", 3, true},
		{"", -1, false},
		{"zzz", -1, false},
	}
	for _, tc := range cases {
		got, ok := c.FindCategory(tc.query)
		assert.Equal(t, tc.ok, ok, "query %q", tc.query)
		assert.Equal(t, tc.want, got, "query %q", tc.query)
	}
}
