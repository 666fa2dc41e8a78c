package thumbnail

// Package thumbnail decodes gallery images, applies their EXIF orientation and
// renders square aspect-fill thumbnails on a bounded set of goroutines.
