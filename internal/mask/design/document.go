package design

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FormatTag identifies a persisted mask design document.
const FormatTag = "cybermask-design"

// FormatVersion is the current document schema version.
const FormatVersion = 1

// Document is the persisted form of a mask design. Reloading a document
// and regenerating against the same target mesh state reproduces the
// identical instance set.
type Document struct {
	Format     string                  `yaml:"format"`
	Version    int                     `yaml:"version"`
	ID         string                  `yaml:"id"`
	SavedAt    time.Time               `yaml:"saved_at"`
	Config     MaskConfig              `yaml:"config"`
	Animations map[string]AnimationDef `yaml:"animations,omitempty"`
}

// NewDocument wraps a config in a fresh document with a new identity.
func NewDocument(cfg MaskConfig) *Document {
	return &Document{
		Format:  FormatTag,
		Version: FormatVersion,
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
		Config:  cfg,
	}
}

// Load reads and validates a design document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing design %s: %w", path, err)
	}

	if doc.Format != FormatTag {
		return nil, fmt.Errorf("%s: not a mask design document (format %q)", path, doc.Format)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("%s: design version %d is newer than supported %d", path, doc.Version, FormatVersion)
	}
	if err := doc.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", path, err)
	}

	return &doc, nil
}

// Save writes the document to path, refreshing the timestamp.
func (d *Document) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	d.SavedAt = time.Now().UTC()
	data, err := yaml.Marshal(d)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
