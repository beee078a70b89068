package audio

// Config holds configuration for exercise audio generation.
type Config struct {
	// Model is the speech generation model.
	Model string `mapstructure:"model" default:"gemini-2.5-flash-preview-tts"`
	// Voice is the prebuilt voice used for narration.
	Voice string `mapstructure:"voice" default:"Kore"`
	// OutputDir is the directory per-exercise audio folders are written to.
	OutputDir string `mapstructure:"output_dir" default:"Assets/Audio/Exercises"`
	// ManifestName is the name of the manifest JSON written to OutputDir.
	ManifestName string `mapstructure:"manifest_name" default:"audio_manifest.json"`
	// HelperPath is the path of the generated Swift lookup helper.
	HelperPath string `mapstructure:"helper_path" default:"Models/ExerciseAudio.swift"`
}
