package cmd

import (
	"context"
	"fmt"
	"os"

	"pbxsync/core/config"
	"pbxsync/core/logger"
	"pbxsync/feature/audio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// audioCmd is the parent command for exercise audio tooling.
var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Exercise audio asset tools",
}

// audioGenerateCmd synthesizes the spoken exercise library.
var audioGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate spoken exercise audio, manifest, and Swift helper",
	Long: `Generate synthesizes narration for every catalog exercise: an intro, one
clip per instruction step, and a completion message, written as WAV files
under the configured output directory. It also writes audio_manifest.json
and the ExerciseAudio.swift lookup helper.

Requires GEMINI_API_KEY in the environment or .env file. Segments that
fail to synthesize are skipped and reported; the batch keeps going.

Examples:
  pbxsync audio generate
  AUDIO_VOICE=Puck pbxsync audio generate`,
	RunE: runAudioGenerate,
}

func init() {
	audioCmd.AddCommand(audioGenerateCmd)
	RootCmd.AddCommand(audioCmd)
}

func runAudioGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// LoadConfig has already pulled in .env, so the key is visible here.
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}

	synth, err := audio.NewGeminiSynthesizer(ctx, &cfg.Audio)
	if err != nil {
		return fmt.Errorf("failed to create speech client: %w", err)
	}

	l.Info("Generating exercise audio files...",
		zap.String("model", cfg.Audio.Model),
		zap.String("voice", cfg.Audio.Voice),
		zap.String("output_dir", cfg.Audio.OutputDir),
	)

	gen := audio.NewGenerator(&cfg.Audio, synth, l, cfg.Project.Root)
	res, err := gen.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate audio: %w", err)
	}

	l.Info("Audio library generated",
		zap.Int("segments", res.Generated),
		zap.Int("failed", res.Failed),
		zap.String("manifest", res.ManifestPath),
		zap.String("helper", res.HelperPath),
	)
	return nil
}
