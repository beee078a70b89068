package audio

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// ErrNoAudio is returned when the speech model answers without audio data.
var ErrNoAudio = errors.New("audio: response carries no audio data")

// Synthesizer turns one text segment into raw PCM samples.
type Synthesizer interface {
	// Synthesize speaks text with the given delivery style and returns
	// 24 kHz 16-bit mono little-endian PCM.
	Synthesize(ctx context.Context, text, style string) ([]byte, error)
}

// GeminiSynthesizer is a thin wrapper around the official genai client,
// configured for the speech models. The client reads GEMINI_API_KEY from
// the environment.
type GeminiSynthesizer struct {
	cli   *genai.Client
	model string
	voice string
}

func NewGeminiSynthesizer(ctx context.Context, cfg *Config) (*GeminiSynthesizer, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiSynthesizer{cli: cli, model: cfg.Model, voice: cfg.Voice}, nil
}

// Synthesize asks the speech model for an audio rendition of text. The
// delivery style is carried in the prompt, which is how the TTS models
// take direction.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, text, style string) ([]byte, error) {
	prompt := text
	if style != "" {
		prompt = style + ": " + text
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
				},
			},
		},
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoAudio
	}
	data := resp.Candidates[0].Content.Parts[0].InlineData
	if data == nil || len(data.Data) == 0 {
		return nil, ErrNoAudio
	}
	return data.Data, nil
}
