package advisor

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CATALOG LOADER (C1)
// =============================================================================
// Loads the hero catalog and lineup template catalog once at startup and
// exposes indexed, read-only lookups. Mirrors the teacher's
// LoadModelRegistry/DefaultModelRegistry shape: read-from-file-or-fall-back.
// =============================================================================

// TemplateSlot is one ordered slot in a LineupTemplate.
type TemplateSlot struct {
	Class     HeroClass `json:"class"`
	Role      string    `json:"role"`
	IsLead    bool      `json:"isLead"`
	Preferred []string  `json:"preferred"` // ["any"] sentinel marks a filler slot

	// NoClassFallback disables step 2d's "scan all owned heroes of the
	// slot's class" fallback. Set on joiner slots: substituting any other
	// hero of the same troop class for the canonical joiner is actively
	// wrong advice (see GLOSSARY's joiner-vs-leader invariant), so those
	// slots only ever fill from Preferred.
	NoClassFallback bool `json:"noClassFallback,omitempty"`
}

// IsFiller reports whether this slot is a generic filler ("any" sentinel).
func (s TemplateSlot) IsFiller() bool {
	return len(s.Preferred) == 1 && s.Preferred[0] == "any"
}

// LineupTemplate describes one game mode's slot layout.
type LineupTemplate struct {
	Key              string            `json:"key"`
	Name             string            `json:"name"`
	Slots            []TemplateSlot    `json:"slots"`
	TroopRatio       TroopRatio        `json:"troopRatio"`
	Notes            string            `json:"notes"`
	KeyHeroes        []string          `json:"keyHeroes"`
	HeroExplanations map[string]string `json:"heroExplanations,omitempty"`
	RatioExplanation string            `json:"ratioExplanation,omitempty"`
	JoinerWarning    string            `json:"joinerWarning,omitempty"`
	SustainHeroes    []SustainHero     `json:"sustainHeroes,omitempty"`
}

// SustainHero is a hero the garrison template calls out as a lead alternative.
type SustainHero struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// catalogFile is the on-disk shape for hero_catalog.json / .yaml.
type catalogFile struct {
	Heroes []HeroEntry `json:"heroes" yaml:"heroes"`
}

// templateFile is the on-disk shape for lineup_templates.json / .yaml.
type templateFile struct {
	Templates map[string]LineupTemplate `json:"templates" yaml:"templates"`
}

// Catalog is the immutable, process-wide hero + lineup template store.
type Catalog struct {
	heroesByName map[string]HeroEntry
	templates    map[string]LineupTemplate
}

// LoadCatalog reads a hero catalog file and a lineup template file (JSON or
// YAML, detected by extension) and builds the indexes. Missing or malformed
// files are fatal — the loader is the only component that touches the file
// source, so a bad catalog must fail at startup, not at query time.
func LoadCatalog(heroPath, templatePath string) (*Catalog, error) {
	heroes, err := loadHeroFile(heroPath)
	if err != nil {
		return nil, fmt.Errorf("advisor: load hero catalog: %w", err)
	}
	templates, err := loadTemplateFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("advisor: load lineup templates: %w", err)
	}
	return NewCatalog(heroes, templates), nil
}

// NewCatalog builds a Catalog directly from in-memory tables (used by tests
// and by callers that embed the catalog rather than reading it from disk).
func NewCatalog(heroes []HeroEntry, templates map[string]LineupTemplate) *Catalog {
	c := &Catalog{
		heroesByName: make(map[string]HeroEntry, len(heroes)),
		templates:    make(map[string]LineupTemplate, len(templates)),
	}
	for _, h := range heroes {
		c.heroesByName[h.Name] = h
	}
	for k, t := range templates {
		t.Key = k
		c.templates[k] = t
	}
	return c
}

func loadHeroFile(path string) ([]HeroEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf catalogFile
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cf)
	} else {
		err = json.Unmarshal(data, &cf)
	}
	if err != nil {
		return nil, err
	}
	return cf.Heroes, nil
}

func loadTemplateFile(path string) (map[string]LineupTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf templateFile
	if isYAML(path) {
		err = yaml.Unmarshal(data, &tf)
	} else {
		err = json.Unmarshal(data, &tf)
	}
	if err != nil {
		return nil, err
	}
	return tf.Templates, nil
}

func isYAML(path string) bool {
	n := len(path)
	return n >= 5 && (path[n-5:] == ".yaml" || path[n-4:] == ".yml")
}

// Lookup returns the catalog entry for a hero name, or the Unknown fallback
// (§3) if the hero was never loaded.
func (c *Catalog) Lookup(name string) (HeroEntry, bool) {
	e, ok := c.heroesByName[name]
	if !ok {
		return UnknownHeroEntry(name), false
	}
	return e, true
}

// Template returns the lineup template for a mode key.
func (c *Catalog) Template(modeKey string) (LineupTemplate, bool) {
	t, ok := c.templates[modeKey]
	return t, ok
}

// AllHeroNames returns every hero name in the catalog, for the "general
// lineup" universe (§4.5's "replace owned with the universe of heroes").
func (c *Catalog) AllHeroNames() []string {
	names := make([]string, 0, len(c.heroesByName))
	for n := range c.heroesByName {
		names = append(names, n)
	}
	return names
}
