package ontology

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/classes.yaml
var defaultCatalog []byte

// classEntry is one catalog record as stored in YAML.
type classEntry struct {
	Name     string   `yaml:"name"`
	Parents  []string `yaml:"parents"`
	Label    string   `yaml:"label"`
	Synonyms []string `yaml:"synonyms"`
	Examples []string `yaml:"examples"`
}

type catalog struct {
	Classes []classEntry `yaml:"classes"`
}

// Index is the in-process ontology lookup service. It is immutable after
// construction and safe for concurrent readers.
type Index struct {
	entries map[string]classEntry // by class name
	parents map[string][]string
}

// NewIndex builds an index from the embedded class catalog.
func NewIndex() (*Index, error) {
	return newIndexFromYAML(defaultCatalog)
}

// NewIndexFromFile builds an index from an on-disk catalog, allowing ontology
// extensions without rebuilding.
func NewIndexFromFile(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class catalog: %w", err)
	}
	return newIndexFromYAML(data)
}

func newIndexFromYAML(data []byte) (*Index, error) {
	var cat catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse class catalog: %w", err)
	}
	if len(cat.Classes) == 0 {
		return nil, fmt.Errorf("class catalog is empty")
	}

	idx := &Index{
		entries: make(map[string]classEntry, len(cat.Classes)),
		parents: make(map[string][]string, len(cat.Classes)),
	}
	for _, entry := range cat.Classes {
		if !strings.HasPrefix(entry.Name, ":") {
			return nil, fmt.Errorf("class %q is not prefixed", entry.Name)
		}
		if _, dup := idx.entries[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate class %q", entry.Name)
		}
		idx.entries[entry.Name] = entry
		idx.parents[entry.Name] = entry.Parents
	}
	return idx, nil
}

// Match implements Service. Results are returned confidence descending; ties
// break alphabetically by class for determinism.
func (idx *Index) Match(text string, templates []QueryTemplate) []Result {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	var results []Result
	seen := make(map[string]bool)

	for _, template := range templates {
		// Deterministic order over the map.
		names := make([]string, 0, len(idx.entries))
		for name := range idx.entries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if seen[name] {
				continue
			}
			if idx.matches(idx.entries[name], needle, template) {
				seen[name] = true
				results = append(results, Result{
					Class:    name,
					Score:    templateScores[template],
					Template: template,
				})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Class < results[j].Class
	})
	return results
}

func (idx *Index) matches(entry classEntry, needle string, template QueryTemplate) bool {
	label := strings.ToLower(entry.Label)
	switch template {
	case TemplateExact:
		if label == needle {
			return true
		}
		for _, s := range entry.Synonyms {
			if strings.ToLower(s) == needle {
				return true
			}
		}
		for _, e := range entry.Examples {
			if strings.ToLower(e) == needle {
				return true
			}
		}
	case TemplateSynonymContainsText:
		for _, s := range entry.Synonyms {
			if strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
	case TemplateTextContainsSynonym:
		for _, s := range entry.Synonyms {
			if strings.Contains(needle, strings.ToLower(s)) {
				return true
			}
		}
	case TemplateLabelContainsText:
		return strings.Contains(label, needle)
	case TemplateTextContainsLabel:
		return label != "" && strings.Contains(needle, label)
	case TemplateExampleContainsText:
		for _, e := range entry.Examples {
			if strings.Contains(strings.ToLower(e), needle) {
				return true
			}
		}
	}
	return false
}

// IsSubclassOf implements Service with a transitive walk over parents.
// A class is considered a subclass of itself.
func (idx *Index) IsSubclassOf(class, ancestor string) bool {
	if _, known := idx.entries[class]; !known {
		return false
	}
	if class == ancestor {
		return true
	}
	// Parent chains are shallow; no cycle guard beyond the visited set.
	visited := make(map[string]bool)
	queue := []string{class}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, p := range idx.parents[cur] {
			if p == ancestor {
				return true
			}
			queue = append(queue, p)
		}
	}
	return false
}

// LocalName strips the prefix from a class name (":Person" -> "Person").
func LocalName(class string) string {
	return strings.TrimPrefix(class, ":")
}
