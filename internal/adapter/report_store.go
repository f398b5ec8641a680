package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/listedit/internal/model"
)

// ReportStore persists and retrieves batch results.
type ReportStore interface {
	SaveReports(dir m.FilePath, results []m.FileResult) error
	LoadReports(dir m.FilePath) ([]m.FileResult, error)
}

// LocalReportStore writes one YAML file per result, named after a hash of
// the document path and command so reruns overwrite their own reports.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Path    string `yaml:"path"`
	Command string `yaml:"command"`
	Action  string `yaml:"action"`
	Lists   int    `yaml:"lists"`
	Items   int    `yaml:"items"`
	Err     string `yaml:"error,omitempty"`
}

// SaveReports writes results under dir.
func (s *LocalReportStore) SaveReports(dir m.FilePath, results []m.FileResult) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	for _, result := range results {
		entry := reportYAML{
			Path:    string(result.Path),
			Command: string(result.Command),
			Action:  string(result.Outcome.Action),
			Lists:   result.Outcome.Lists,
			Items:   result.Outcome.Items,
		}

		if result.Err != nil {
			entry.Err = result.Err.Error()
		}

		data, err := yaml.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", result.Path, err)
		}

		name := s.computeReportHash(result) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", result.Path, err)
		}
	}

	return nil
}

// LoadReports reads every report under dir, ordered by document path.
func (s *LocalReportStore) LoadReports(dir m.FilePath) ([]m.FileResult, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read report directory %s: %w", dir, err)
	}

	var results []m.FileResult

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}

		// #nosec G304 - reports are files this store wrote
		data, err := os.ReadFile(filepath.Join(string(dir), e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", e.Name(), err)
		}

		var entry reportYAML
		if err := yaml.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", e.Name(), err)
		}

		result := m.FileResult{
			Path:    m.FilePath(entry.Path),
			Command: m.Command(entry.Command),
			Outcome: m.Outcome{Action: m.Action(entry.Action), Lists: entry.Lists, Items: entry.Items},
		}

		if entry.Err != "" {
			result.Err = ReportError(entry.Err)
		}

		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}

		return results[i].Command < results[j].Command
	})

	return results, nil
}

// ReportError is an error restored from a saved report.
type ReportError string

func (e ReportError) Error() string {
	return string(e)
}

func (s *LocalReportStore) computeReportHash(result m.FileResult) string {
	sum := sha256.Sum256([]byte(string(result.Path) + "\x00" + string(result.Command)))

	return hex.EncodeToString(sum[:8])
}
