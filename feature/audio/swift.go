package audio

import (
	"fmt"
	"strings"
)

const swiftHeader = `//
//  ExerciseAudio.swift
//  TouchGrass
//
//  Auto-generated file containing audio asset paths for exercises
//

import Foundation

struct ExerciseAudio {
    let exerciseKey: String
    let introPath: String?
    let stepPaths: [String]
    let completePath: String?

    static let audioAssets: [String: ExerciseAudio] = [
`

const swiftFooter = `    ]

    static func audioFor(_ exerciseKey: String) -> ExerciseAudio? {
        return audioAssets[exerciseKey]
    }
}
`

// swiftHelper renders the lookup table compiled into the app. Entries
// follow catalog order. Segments missing from the manifest come out as
// nil, or are left off the step list.
func swiftHelper(manifest map[string]manifestEntry) string {
	var b strings.Builder
	b.WriteString(swiftHeader)
	for _, ex := range Exercises {
		entry, ok := manifest[ex.Key]
		if !ok {
			continue
		}
		var steps []string
		for i := 1; ; i++ {
			p, ok := entry.Files[fmt.Sprintf("step_%d", i)]
			if !ok {
				break
			}
			steps = append(steps, fmt.Sprintf("%q", p))
		}
		fmt.Fprintf(&b, "        %q: ExerciseAudio(\n", ex.Key)
		fmt.Fprintf(&b, "            exerciseKey: %q,\n", ex.Key)
		fmt.Fprintf(&b, "            introPath: %s,\n", swiftOptional(entry.Files["intro"]))
		fmt.Fprintf(&b, "            stepPaths: [%s],\n", strings.Join(steps, ", "))
		fmt.Fprintf(&b, "            completePath: %s\n", swiftOptional(entry.Files["complete"]))
		b.WriteString("        ),\n")
	}
	b.WriteString(swiftFooter)
	return b.String()
}

func swiftOptional(p string) string {
	if p == "" {
		return "nil"
	}
	return fmt.Sprintf("%q", p)
}
