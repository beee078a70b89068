// Package icon registers the application icon directly in the project
// manifest.
//
// The icon ships as a loose .icns resource instead of an asset catalog
// entry, so the patch registers AppIcon.icns in three places (file
// reference, Resources build file, app group child) and strips the asset
// catalog icon settings that would shadow it. Every step is guarded,
// making the patch safe to run repeatedly.
package icon
