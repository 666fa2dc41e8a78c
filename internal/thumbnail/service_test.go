package thumbnail

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/galeria/internal/model"
)

func writeImage(t *testing.T, dir, name string, width, height int) model.ImageEntry {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	return model.NewImageEntry(dir, path, info.Size(), info.ModTime())
}

type result struct {
	img image.Image
	err error
}

func collect(s *Service, entry model.ImageEntry, size int) chan result {
	ch := make(chan result, 1)
	s.Thumbnail(entry, size, func(img image.Image, err error) {
		ch <- result{img: img, err: err}
	})
	return ch
}

func await(t *testing.T, ch chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("thumbnail callback was not called")
		return result{}
	}
}

func TestService_RendersSquareThumbnail(t *testing.T) {
	entry := writeImage(t, t.TempDir(), "wide.png", 400, 100)

	service, err := NewService(2, 16, nil)
	require.NoError(t, err)

	r := await(t, collect(service, entry, 64))
	require.NoError(t, r.err)
	assert.Equal(t, 64, r.img.Bounds().Dx())
	assert.Equal(t, 64, r.img.Bounds().Dy())
}

func TestService_CachesThumbnail(t *testing.T) {
	entry := writeImage(t, t.TempDir(), "photo.jpg", 120, 80)

	service, err := NewService(1, 16, nil)
	require.NoError(t, err)

	first := await(t, collect(service, entry, 32))
	require.NoError(t, first.err)
	service.Wait()

	cached, ok := service.Cached(entry, 32)
	require.True(t, ok)
	assert.Same(t, first.img, cached)
	assert.Equal(t, 1, service.Len())

	// cache hits are delivered synchronously
	delivered := false
	service.Thumbnail(entry, 32, func(img image.Image, err error) {
		delivered = true
		assert.Same(t, first.img, img)
	})
	assert.True(t, delivered)

	service.Purge()
	assert.Zero(t, service.Len())
}

func TestService_CoalescesConcurrentRequests(t *testing.T) {
	entry := writeImage(t, t.TempDir(), "photo.png", 50, 50)

	service, err := NewService(1, 16, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var images []image.Image
	for i := 0; i < 5; i++ {
		wg.Add(1)
		service.Thumbnail(entry, 16, func(img image.Image, err error) {
			defer wg.Done()
			assert.NoError(t, err)
			mu.Lock()
			images = append(images, img)
			mu.Unlock()
		})
	}
	wg.Wait()
	service.Wait()

	require.Len(t, images, 5)
	for _, img := range images[1:] {
		assert.Same(t, images[0], img)
	}
	assert.Equal(t, 1, service.Len())
}

func TestService_ReportsDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	entry := model.NewImageEntry(dir, path, 12, time.Now())

	service, err := NewService(1, 16, nil)
	require.NoError(t, err)

	r := await(t, collect(service, entry, 32))
	assert.Error(t, r.err)
	assert.Nil(t, r.img)

	service.Wait()
	assert.Zero(t, service.Len())
}

func TestService_LoadFullFitsBounds(t *testing.T) {
	entry := writeImage(t, t.TempDir(), "big.png", 800, 400)

	service, err := NewService(1, 16, nil)
	require.NoError(t, err)

	img, info, err := service.LoadFull(entry.Path, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	assert.Equal(t, 800, info.Width)
	assert.Equal(t, 400, info.Height)
	assert.Equal(t, 1, info.Orientation)
}

func TestService_LoadFullMissingFile(t *testing.T) {
	service, err := NewService(1, 16, nil)
	require.NoError(t, err)

	_, _, err = service.LoadFull(filepath.Join(t.TempDir(), "missing.png"), 100, 100)
	assert.Error(t, err)
}

func TestNewService_RejectsInvalidCacheSize(t *testing.T) {
	_, err := NewService(1, 0, nil)
	assert.Error(t, err)
}
