// Package watch follows saved folders with fsnotify and publishes
// event.FolderChanged when an image file is created, removed or renamed.
package watch
