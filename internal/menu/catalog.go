package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("menu: built-in catalog: %v", err))
	}
	return c
}

// Load reads and validates a catalog file. An empty path yields the default.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks structural rules and that every item resolves to a panel.
func (c Catalog) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid catalog: %s failed %q", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for col, cat := range c.Categories {
		if _, dup := seen[cat.ID]; dup {
			return fmt.Errorf("invalid catalog: duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = struct{}{}
		for row, item := range cat.Items {
			if _, ok := c.Resolve(col, row); !ok {
				return fmt.Errorf("invalid catalog: item %s/%s has unknown action %q", cat.ID, item.ID, item.Action)
			}
		}
	}
	for p := range c.Panels {
		if !p.Valid() {
			return fmt.Errorf("invalid catalog: unknown panel %q", p)
		}
	}
	return nil
}

// FindCategory resolves query against category IDs and labels. Exact matches
// win; otherwise the closest fuzzy match is returned.
func (c Catalog) FindCategory(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1, false
	}
	targets := make([]string, 0, len(c.Categories)*2)
	owner := make(map[string]int, len(c.Categories)*2)
	for i, cat := range c.Categories {
		if strings.EqualFold(cat.ID, query) || strings.EqualFold(cat.Label, query) {
			return i, true
		}
		for _, name := range []string{cat.ID, cat.Label} {
			if _, ok := owner[name]; ok {
				continue
			}
			owner[name] = i
			targets = append(targets, name)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		return -1, false
	}
	sort.Sort(ranks)
	return owner[ranks[0].Target], true
}
