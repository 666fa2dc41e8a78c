package scan

// Package scan enumerates image files in saved folders. A single background
// worker walks the folders one at a time and publishes every discovered file
// as its own event so the UI can insert thumbnails as they appear.
