package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spafrag"
)

// writeFile writes content to path, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Ensure InPlaceSink implements spafrag.PageSink at compile time.
var _ spafrag.PageSink = (*InPlaceSink)(nil)

// InPlaceSink overwrites source pages with their fragments.
// The overwrite is destructive; no backup is kept.
type InPlaceSink struct{}

// NewInPlaceSink creates a new InPlaceSink.
func NewInPlaceSink() *InPlaceSink {
	return &InPlaceSink{}
}

func (s *InPlaceSink) WriteFragment(ctx context.Context, path, content string) (string, error) {
	return path, writeFile(path, content)
}

func (s *InPlaceSink) WriteScript(ctx context.Context, path, content string) (string, error) {
	return path, writeFile(path, content)
}

// Ensure MirrorSink implements spafrag.PageSink at compile time.
var _ spafrag.PageSink = (*MirrorSink)(nil)

// MirrorSink writes output under a separate directory, preserving each
// path's position relative to the page root. Sources are never modified.
type MirrorSink struct {
	root   string
	outDir string
}

// NewMirrorSink creates a new MirrorSink re-rooting paths below root into outDir.
func NewMirrorSink(root, outDir string) *MirrorSink {
	return &MirrorSink{root: root, outDir: outDir}
}

func (s *MirrorSink) WriteFragment(ctx context.Context, path, content string) (string, error) {
	return s.write(path, content)
}

func (s *MirrorSink) WriteScript(ctx context.Context, path, content string) (string, error) {
	return s.write(path, content)
}

func (s *MirrorSink) write(path, content string) (string, error) {
	dest, err := s.Resolve(path)
	if err != nil {
		return "", err
	}
	return dest, writeFile(dest, content)
}

// Resolve returns the output location of a path below the page root.
func (s *MirrorSink) Resolve(path string) (string, error) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return "", spafrag.Errorf(spafrag.EINVALID, "cannot mirror %q: %v", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", spafrag.Errorf(spafrag.EINVALID, "cannot mirror %q: path traversal outside %q", path, s.root)
	}
	return filepath.Join(s.outDir, rel), nil
}

// Ensure DryRunSink implements spafrag.PageSink at compile time.
var _ spafrag.PageSink = (*DryRunSink)(nil)

// Write is an output recorded by DryRunSink.
type Write struct {
	Path    string
	Content string
}

// DryRunSink records output without touching the filesystem.
type DryRunSink struct {
	Fragments []Write
	Scripts   []Write
}

// NewDryRunSink creates a new DryRunSink.
func NewDryRunSink() *DryRunSink {
	return &DryRunSink{}
}

func (s *DryRunSink) WriteFragment(ctx context.Context, path, content string) (string, error) {
	s.Fragments = append(s.Fragments, Write{Path: path, Content: content})
	return path, nil
}

func (s *DryRunSink) WriteScript(ctx context.Context, path, content string) (string, error) {
	s.Scripts = append(s.Scripts, Write{Path: path, Content: content})
	return path, nil
}
