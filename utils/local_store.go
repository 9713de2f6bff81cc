package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// LocalStore writes images into Dir and serves them under URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &LocalStore{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) Save(_ context.Context, filename, _ string, data []byte) (string, error) {
	name := filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.URLPrefix + "/" + name, nil
}

// Delete removes the file named by ref. A file that is already gone is not an error.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid image reference %q", ref)
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

func (s *LocalStore) List(_ context.Context) ([]StoredImage, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read images directory: %w", err)
	}

	images := []StoredImage{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		images = append(images, StoredImage{
			Name:     DisplayName(e.Name()),
			ImageURL: s.URLPrefix + "/" + e.Name(),
		})
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ImageURL < images[j].ImageURL })
	return images, nil
}
