// Package fs provides file-based storage for published artifacts.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/talkfeed"
	"github.com/google/renameio/v2"
)

// Ensure ArtifactStore implements talkfeed.ArtifactStore at compile time.
var _ talkfeed.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements talkfeed.ArtifactStore with atomic update semantics.
// Artifacts are written to a sibling staging directory and swapped into place
// on Commit, so the output directory never holds a partial build.
type ArtifactStore struct {
	dir string

	mu      sync.Mutex
	started bool
}

// NewArtifactStore creates a store publishing into dir.
// Artifacts are staged in dir.tmp until Commit.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: filepath.Clean(dir)}
}

// Dir returns the output directory.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

func (s *ArtifactStore) tempDir() string {
	return s.dir + ".tmp"
}

func (s *ArtifactStore) oldDir() string {
	return s.dir + ".old"
}

// Save writes the artifact into the staging directory. The first Save of a
// build discards whatever a previous, interrupted build left behind.
func (s *ArtifactStore) Save(ctx context.Context, a *talkfeed.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := artifactPath(a.Name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		if err := os.RemoveAll(s.tempDir()); err != nil {
			return err
		}
		s.started = true
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return renameio.WriteFile(fullPath, a.Data, 0644)
}

// Commit replaces the output directory with the staged one.
func (s *ArtifactStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return talkfeed.Errorf(talkfeed.EINVALID, "nothing to commit")
	}

	if err := os.MkdirAll(filepath.Dir(s.dir), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.oldDir()); err != nil {
		return err
	}

	hadPrevious := true
	if err := os.Rename(s.dir, s.oldDir()); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		hadPrevious = false
	}

	if err := os.Rename(s.tempDir(), s.dir); err != nil {
		if hadPrevious {
			_ = os.Rename(s.oldDir(), s.dir)
		}
		return err
	}
	s.started = false

	return os.RemoveAll(s.oldDir())
}

// Abort discards the staging directory, leaving the output untouched.
func (s *ArtifactStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	return os.RemoveAll(s.tempDir())
}

// artifactPath validates an artifact name and converts it to a relative
// file path. Names use forward slashes and must stay inside the output.
func artifactPath(name string) (string, error) {
	if name == "" {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "artifact name required")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "invalid artifact name %q", name)
	}

	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", talkfeed.Errorf(talkfeed.EINVALID, "path traversal in artifact name %q", name)
	}

	return cleaned, nil
}
