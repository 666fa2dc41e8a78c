package model

// Package model defines domain data structures used across the app: image
// entries discovered in saved folders and the scan state of each folder.
// Structures are plain values so they can travel over the event bus.
