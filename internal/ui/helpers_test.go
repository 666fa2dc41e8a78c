package ui

import (
	"errors"
	"image"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ytget/galeria/internal/model"
	"github.com/ytget/galeria/internal/thumbnail"
)

// fakeRenderer renders solid squares synchronously
type fakeRenderer struct {
	mu       sync.Mutex
	failing  map[string]bool
	requests map[string]int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{failing: map[string]bool{}, requests: map[string]int{}}
}

func (f *fakeRenderer) Thumbnail(entry model.ImageEntry, size int, done thumbnail.Callback) {
	f.mu.Lock()
	f.requests[entry.Path]++
	fail := f.failing[entry.Path]
	f.mu.Unlock()

	if fail {
		done(nil, errors.New("cannot decode"))
		return
	}
	done(solidImage(size, size), nil)
}

func (f *fakeRenderer) LoadFull(path string, maxWidth, maxHeight int) (image.Image, *thumbnail.ExifInfo, error) {
	f.mu.Lock()
	fail := f.failing[path]
	f.mu.Unlock()

	if fail {
		return nil, nil, errors.New("cannot decode")
	}
	info := thumbnail.DefaultExifInfo()
	info.Width, info.Height = 40, 30
	return solidImage(40, 30), info, nil
}

func (f *fakeRenderer) fail(path string) {
	f.mu.Lock()
	f.failing[path] = true
	f.mu.Unlock()
}

func solidImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 0xc0, 0xff
	}
	return img
}

// queueDispatcher collects UI callbacks so tests run them on their own goroutine
type queueDispatcher struct {
	queue chan func()
}

func newQueueDispatcher() *queueDispatcher {
	return &queueDispatcher{queue: make(chan func(), 256)}
}

func (d *queueDispatcher) dispatch(fn func()) {
	d.queue <- fn
}

// drain runs every queued callback without waiting
func (d *queueDispatcher) drain() {
	for {
		select {
		case fn := <-d.queue:
			fn()
		default:
			return
		}
	}
}

// await runs the next callback, waiting for it if needed
func (d *queueDispatcher) await(t *testing.T) {
	t.Helper()
	select {
	case fn := <-d.queue:
		fn()
	case <-time.After(5 * time.Second):
		t.Fatal("no UI callback was dispatched")
	}
}

func direct(fn func()) { fn() }

func sampleEntries(names ...string) []model.ImageEntry {
	entries := make([]model.ImageEntry, 0, len(names))
	for i, name := range names {
		root := filepath.Join(string(filepath.Separator), "photos")
		path := filepath.Join(root, name)
		entry := model.NewImageEntry(root, path, int64(1024*(i+1)), time.Unix(int64(1700000000+i), 0))
		entry.ID = name
		entries = append(entries, entry)
	}
	return entries
}

