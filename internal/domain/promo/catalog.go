package promo

import (
	"fmt"
	"sort"
)

// Catalog is the read-only registry of promo definitions.
type Catalog struct {
	byCode map[string]Definition
	codes  []string
}

func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{byCode: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		d.Code = NormalizeCode(d.Code)
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byCode[d.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, d.Code)
		}
		c.byCode[d.Code] = d
		c.codes = append(c.codes, d.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// Lookup matches case-insensitively and hides inactive promos.
func (c *Catalog) Lookup(code string) (Definition, bool) {
	d, ok := c.Definition(code)
	if !ok || !d.Active {
		return Definition{}, false
	}
	return d, true
}

// Definition ignores the active flag. Bookkeeping for payments taken
// before a promo was switched off still needs the definition.
func (c *Catalog) Definition(code string) (Definition, bool) {
	d, ok := c.byCode[NormalizeCode(code)]
	return d, ok
}

func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.byCode[code])
	}
	return out
}
