package store

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/gastos-bot/internal/logging"
	"fjacquet/gastos-bot/internal/models"

	"gopkg.in/yaml.v3"
)

// DecodeCatalog parses a catalog document in any of the accepted layouts:
//
//	categories: [{name: X, keywords: [...]}]   # wrapped list
//	[{name: X, keywords: [...]}]               # bare list
//	X: [...]                                   # ordered mapping
//
// A missing or malformed keyword list yields an empty list and a warning.
// Entries without a name and repeated names are skipped with a warning.
func DecodeCatalog(data []byte, logger logging.Logger) (models.SynonymCatalog, error) {
	logger = logging.OrDefault(logger)

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return models.SynonymCatalog{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.MappingNode {
		if list := mappingValue(root, "categories"); list != nil {
			if list.Kind == yaml.ScalarNode && list.ShortTag() == "!!null" {
				return models.SynonymCatalog{}, nil
			}
			root = list
		}
	}

	var entries models.SynonymCatalog
	switch root.Kind {
	case yaml.SequenceNode:
		for _, item := range root.Content {
			if item.Kind != yaml.MappingNode {
				logger.Warn("Skipping catalog entry that is not a mapping",
					logging.Field{Key: "line", Value: item.Line})
				continue
			}
			var name string
			if n := mappingValue(item, "name"); n != nil && n.Kind == yaml.ScalarNode {
				name = strings.TrimSpace(n.Value)
			}
			entries = append(entries, models.SubcategoryConfig{
				Name:     name,
				Keywords: decodeKeywords(mappingValue(item, "keywords"), name, logger),
			})
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			name := strings.TrimSpace(root.Content[i].Value)
			value := root.Content[i+1]
			if value.Kind == yaml.MappingNode {
				value = mappingValue(value, "keywords")
			}
			entries = append(entries, models.SubcategoryConfig{
				Name:     name,
				Keywords: decodeKeywords(value, name, logger),
			})
		}
	default:
		return nil, errors.New("catalog must be a list or a mapping")
	}

	return dedupe(entries, logger), nil
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func decodeKeywords(node *yaml.Node, name string, logger logging.Logger) []string {
	if node == nil || node.Kind != yaml.SequenceNode {
		logger.Warn("Catalog entry has no keyword list",
			logging.Field{Key: logging.FieldCategory, Value: name})
		return []string{}
	}
	keywords := make([]string, 0, len(node.Content))
	for _, k := range node.Content {
		if k.Kind != yaml.ScalarNode || strings.TrimSpace(k.Value) == "" {
			continue
		}
		keywords = append(keywords, k.Value)
	}
	return keywords
}

func dedupe(entries models.SynonymCatalog, logger logging.Logger) models.SynonymCatalog {
	seen := make(map[string]struct{}, len(entries))
	out := make(models.SynonymCatalog, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			logger.Warn("Skipping catalog entry without a name")
			continue
		}
		if _, dup := seen[e.Name]; dup {
			logger.Warn("Skipping duplicate catalog entry",
				logging.Field{Key: logging.FieldCategory, Value: e.Name})
			continue
		}
		seen[e.Name] = struct{}{}
		out = append(out, e)
	}
	return out
}

// paymentMethodRow mirrors models.PaymentMethod with an optional active flag
// so that omitted flags mean active.
type paymentMethodRow struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Icon     string   `yaml:"icon"`
	Keywords []string `yaml:"keywords"`
	Active   *bool    `yaml:"active"`
}

// DecodePaymentMethods parses a payment_methods document, or a bare list.
func DecodePaymentMethods(data []byte) ([]models.PaymentMethod, error) {
	var wrapped struct {
		PaymentMethods []paymentMethodRow `yaml:"payment_methods"`
	}
	var rows []paymentMethodRow
	if err := yaml.Unmarshal(data, &wrapped); err == nil {
		rows = wrapped.PaymentMethods
	} else {
		if errBare := yaml.Unmarshal(data, &rows); errBare != nil {
			return nil, fmt.Errorf("error parsing payment methods: %w", err)
		}
	}

	methods := make([]models.PaymentMethod, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		active := true
		if r.Active != nil {
			active = *r.Active
		}
		methods = append(methods, models.PaymentMethod{
			ID:       r.ID,
			Name:     r.Name,
			Type:     r.Type,
			Icon:     r.Icon,
			Keywords: r.Keywords,
			Active:   active,
		})
	}
	return methods, nil
}
