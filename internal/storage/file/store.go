package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// SubjectStore keeps the subject list in a single document. Files ending in
// .yaml or .yml are YAML, everything else is JSON.
type SubjectStore struct {
	path    string
	useYAML bool
}

func NewSubjectStore(path string) *SubjectStore {
	ext := strings.ToLower(filepath.Ext(path))
	return &SubjectStore{
		path:    path,
		useYAML: ext == ".yaml" || ext == ".yml",
	}
}

// Load treats a missing file as an empty list.
func (f *SubjectStore) Load(ctx context.Context) ([]models.StoredSubject, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.StoredSubject{}, nil
	}
	if err != nil {
		return nil, err
	}

	subjects := make([]models.StoredSubject, 0)
	if f.useYAML {
		err = yaml.Unmarshal(data, &subjects)
	} else {
		err = json.Unmarshal(data, &subjects)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return subjects, nil
}

// Save writes to a temporary file next to the target and renames it over.
func (f *SubjectStore) Save(ctx context.Context, subjects []models.StoredSubject) error {
	if subjects == nil {
		subjects = []models.StoredSubject{}
	}

	var data []byte
	var err error
	if f.useYAML {
		data, err = yaml.Marshal(subjects)
	} else {
		data, err = json.MarshalIndent(subjects, "", "  ")
	}
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *SubjectStore) Close() error { return nil }

var _ interfaces.SubjectStore = (*SubjectStore)(nil)
