// Package audio generates the spoken exercise library.
//
// Every catalog exercise is narrated in three kinds of segments: an intro
// naming the exercise and its benefit, one step per instruction, and a
// completion message. Each segment is synthesized to 24 kHz 16-bit mono
// PCM by a speech model and written as a playable WAV file under the
// configured output directory, one folder per exercise.
//
// Alongside the audio the generator writes two companion artifacts:
//
//   - audio_manifest.json, mapping each exercise to its segment files
//   - Models/ExerciseAudio.swift, a lookup helper compiled into the app
//
// A segment that fails to synthesize is logged and skipped. The run keeps
// going, and the segment is simply absent from both artifacts, so a partial
// library still loads.
//
// # Usage
//
//	synth, err := audio.NewGeminiSynthesizer(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	gen := audio.NewGenerator(cfg, synth, logger, projectRoot)
//	res, err := gen.Run(ctx)
package audio
