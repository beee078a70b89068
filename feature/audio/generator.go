package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// manifestEntry mirrors one exercise in audio_manifest.json.
type manifestEntry struct {
	Name  string            `json:"name"`
	Files map[string]string `json:"files"`
}

// Result reports what a generation run produced.
type Result struct {
	// Generated counts segments written to disk.
	Generated int
	// Failed counts segments skipped after a synthesis or write error.
	Failed int
	// ManifestPath is where the manifest JSON landed.
	ManifestPath string
	// HelperPath is where the Swift lookup helper landed.
	HelperPath string
}

// Generator produces the exercise audio library: one WAV per spoken
// segment, a manifest JSON mapping segments to file paths, and a Swift
// helper the app reads those paths from.
type Generator struct {
	cfg   *Config
	synth Synthesizer
	log   *zap.Logger
	root  string
}

// NewGenerator returns a generator rooted at the project directory.
// Paths recorded in the manifest and helper stay relative to root.
func NewGenerator(cfg *Config, synth Synthesizer, log *zap.Logger, root string) *Generator {
	return &Generator{cfg: cfg, synth: synth, log: log, root: root}
}

// Run synthesizes every catalog segment. A failed segment is logged and
// skipped: the run continues and the segment is simply absent from the
// manifest and the helper.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	outDir := filepath.Join(g.root, filepath.FromSlash(g.cfg.OutputDir))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{}
	manifest := make(map[string]manifestEntry, len(Exercises))

	for _, ex := range Exercises {
		g.log.Info("processing exercise", zap.String("exercise", ex.Key), zap.String("name", ex.Name))

		exDir := filepath.Join(outDir, ex.Key)
		if err := os.MkdirAll(exDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", exDir, err)
		}

		entry := manifestEntry{Name: ex.Name, Files: make(map[string]string)}
		for _, seg := range ex.Segments() {
			if err := g.renderSegment(ctx, exDir, seg); err != nil {
				g.log.Warn("segment skipped",
					zap.String("exercise", ex.Key),
					zap.String("segment", seg.Key),
					zap.Error(err))
				res.Failed++
				continue
			}
			entry.Files[seg.Key] = path.Join(g.cfg.OutputDir, ex.Key, seg.Key+".wav")
			res.Generated++
		}
		manifest[ex.Key] = entry
	}

	manifestPath := filepath.Join(outDir, g.cfg.ManifestName)
	if err := writeManifest(manifestPath, manifest); err != nil {
		return nil, err
	}
	res.ManifestPath = manifestPath

	helperPath := filepath.Join(g.root, filepath.FromSlash(g.cfg.HelperPath))
	if err := os.MkdirAll(filepath.Dir(helperPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating helper directory: %w", err)
	}
	if err := os.WriteFile(helperPath, []byte(swiftHelper(manifest)), 0o644); err != nil {
		return nil, fmt.Errorf("writing Swift helper: %w", err)
	}
	res.HelperPath = helperPath

	g.log.Info("audio generation complete",
		zap.Int("generated", res.Generated),
		zap.Int("failed", res.Failed),
		zap.String("manifest", manifestPath))
	return res, nil
}

func (g *Generator) renderSegment(ctx context.Context, dir string, seg Segment) error {
	pcm, err := g.synth.Synthesize(ctx, seg.Text, seg.Style)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, seg.Key+".wav"))
	if err != nil {
		return err
	}
	if err := WriteWAV(f, pcm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeManifest(manifestPath string, manifest map[string]manifestEntry) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
