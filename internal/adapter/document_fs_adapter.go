// Package adapter contains the document host and file system adapters for listedit.
package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/listedit/internal/model"
)

// Document file extensions recognised by the adapter.
const (
	extYAML = ".yaml"
	extYML  = ".yml"
	extJSON = ".json"
	extHTML = ".html"
)

// DocumentFSAdapter hides file system access from the workflow so document
// handling can be tested without touching the disk.
type DocumentFSAdapter interface {
	// Get expands roots into document files. A root ending in "/..." is walked recursively.
	Get(roots []m.FilePath) ([]m.FilePath, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(root m.FilePath, recursive bool, fn FilepathWalkFunc) error

	// Load reads a YAML, JSON or HTML document.
	Load(path m.FilePath) (*m.Document, error)

	// Save writes a document, picking the format from the file extension.
	Save(path m.FilePath, doc *m.Document) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.FilePath) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalDocumentFSAdapter reads and writes documents on the local disk.
type LocalDocumentFSAdapter struct {
	html *HTMLImporter
}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{html: NewHTMLImporter()}
}

// Get collects document files for the provided roots, dropping duplicates.
func (a *LocalDocumentFSAdapter) Get(roots []m.FilePath) ([]m.FilePath, error) {
	if len(roots) == 0 {
		return []m.FilePath{}, nil
	}

	seen := make(map[string]struct{})

	var files []m.FilePath

	add := func(path string) {
		if !isDocumentFile(path) {
			return
		}

		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		files = append(files, m.FilePath(path))
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.FilePath(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)

			continue
		}

		err = a.Walk(m.FilePath(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalDocumentFSAdapter) Walk(root m.FilePath, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Load reads and decodes the document at path.
func (a *LocalDocumentFSAdapter) Load(path m.FilePath) (*m.Document, error) {
	// #nosec G304 - path is a document the user asked to edit
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	doc, err := a.decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", path, err)
	}

	return doc, nil
}

func (a *LocalDocumentFSAdapter) decode(path m.FilePath, data []byte) (*m.Document, error) {
	doc := &m.Document{}

	switch strings.ToLower(filepath.Ext(string(path))) {
	case extHTML:
		return a.html.Import(bytes.NewReader(data))
	case extJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Save encodes doc in the format implied by the extension of path.
func (a *LocalDocumentFSAdapter) Save(path m.FilePath, doc *m.Document) error {
	data, err := a.encode(path, doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}

func (a *LocalDocumentFSAdapter) encode(path m.FilePath, doc *m.Document) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case extHTML:
		var buf bytes.Buffer
		if err := a.html.Export(&buf, doc); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case extJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return EncodeYAML(doc)
	}
}

// EncodeYAML renders a document as YAML with two-space indentation.
func EncodeYAML(doc *m.Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalDocumentFSAdapter) FileInfo(path m.FilePath) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extYAML, extYML, extJSON, extHTML:
		return !strings.HasPrefix(filepath.Base(path), ".")
	default:
		return false
	}
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
