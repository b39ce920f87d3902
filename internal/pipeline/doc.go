// Package pipeline implements the text transformations applied to a raw
// PCL export before rendering: control-code sanitization and record
// segmentation. All functions are pure and operate on whole strings.
package pipeline
