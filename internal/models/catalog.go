package models

// SubcategoryConfig is one entry of the synonym catalog: a subcategory name
// and the keywords that evidence it.
type SubcategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// SynonymCatalog is the ordered subcategory table. Order matters: the first
// entry wins score ties.
type SynonymCatalog []SubcategoryConfig

// Clone returns a deep copy of the catalog.
func (c SynonymCatalog) Clone() SynonymCatalog {
	if c == nil {
		return nil
	}
	out := make(SynonymCatalog, len(c))
	for i, entry := range c {
		out[i] = SubcategoryConfig{
			Name:     entry.Name,
			Keywords: append([]string(nil), entry.Keywords...),
		}
	}
	return out
}

// Names returns the subcategory names in catalog order.
func (c SynonymCatalog) Names() []string {
	names := make([]string, len(c))
	for i, entry := range c {
		names[i] = entry.Name
	}
	return names
}

// Subcategory is a subcategory row known to the remote keyword store.
type Subcategory struct {
	ID   string
	Name string
}
