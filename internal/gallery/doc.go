package gallery

// Package gallery holds the toolkit-independent rules of the gallery screen:
// how many thumbnail columns fit a given width and which images survive the
// search filter.
