package thumbnail

import (
	"fmt"
	"image"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/model"
)

// Callback receives a rendered thumbnail or the error that prevented it
type Callback func(image.Image, error)

// Renderer is the thumbnail API used by the UI
type Renderer interface {
	Thumbnail(entry model.ImageEntry, size int, done Callback)
	LoadFull(path string, maxWidth, maxHeight int) (image.Image, *ExifInfo, error)
}

// Service renders square thumbnails on a bounded number of goroutines and
// keeps the most recently used ones in memory
type Service struct {
	cache   *lru.Cache[string, image.Image]
	sem     chan struct{}
	log     *logger.Logger
	mu      sync.Mutex
	waiting map[string][]Callback
	wg      sync.WaitGroup
}

// NewService creates a thumbnail service
func NewService(workers, cacheSize int, log *logger.Logger) (*Service, error) {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}

	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create thumbnail cache: %w", err)
	}

	return &Service{
		cache:   cache,
		sem:     make(chan struct{}, workers),
		log:     log,
		waiting: make(map[string][]Callback),
	}, nil
}

// Thumbnail delivers a size x size thumbnail of entry to done. A cached
// thumbnail is delivered synchronously; otherwise done runs on a worker
// goroutine. Concurrent requests for the same image share one decode.
func (s *Service) Thumbnail(entry model.ImageEntry, size int, done Callback) {
	key := cacheKey(entry.Path, size, entry.ModTime)
	if img, ok := s.cache.Get(key); ok {
		done(img, nil)
		return
	}

	s.mu.Lock()
	// a render may have finished between the lookup and the lock
	if img, ok := s.cache.Get(key); ok {
		s.mu.Unlock()
		done(img, nil)
		return
	}
	if callbacks, inFlight := s.waiting[key]; inFlight {
		s.waiting[key] = append(callbacks, done)
		s.mu.Unlock()
		return
	}
	s.waiting[key] = []Callback{done}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.render(key, entry.Path, size)
}

// Cached returns a previously rendered thumbnail without decoding
func (s *Service) Cached(entry model.ImageEntry, size int) (image.Image, bool) {
	return s.cache.Get(cacheKey(entry.Path, size, entry.ModTime))
}

// LoadFull decodes path with its orientation applied and scales it down to
// fit maxWidth x maxHeight. It blocks; call it off the UI thread.
func (s *Service) LoadFull(path string, maxWidth, maxHeight int) (image.Image, *ExifInfo, error) {
	start := time.Now()
	img, info, err := LoadOriented(path)
	if err != nil {
		s.log.Error("Thumbnail", "full image load failed", err, map[string]interface{}{"path": path})
		return nil, nil, err
	}

	img = Fit(img, maxWidth, maxHeight)
	s.log.Debug("Thumbnail", "full image loaded", map[string]interface{}{
		"path":     path,
		"duration": time.Since(start).String(),
	})
	return img, info, nil
}

// Len returns the number of cached thumbnails
func (s *Service) Len() int {
	return s.cache.Len()
}

// Purge drops every cached thumbnail
func (s *Service) Purge() {
	s.cache.Purge()
}

// Wait blocks until all in-flight renders have finished
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) render(key, path string, size int) {
	defer s.wg.Done()

	s.sem <- struct{}{}
	img, err := s.renderThumbnail(path, size)
	<-s.sem

	if err == nil {
		s.cache.Add(key, img)
	}

	s.mu.Lock()
	callbacks := s.waiting[key]
	delete(s.waiting, key)
	s.mu.Unlock()

	for _, done := range callbacks {
		done(img, err)
	}
}

func (s *Service) renderThumbnail(path string, size int) (image.Image, error) {
	img, _, err := LoadOriented(path)
	if err != nil {
		s.log.Warning("Thumbnail", "thumbnail render failed", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil, err
	}
	return Square(img, size), nil
}

func cacheKey(path string, size int, modTime time.Time) string {
	return fmt.Sprintf("%s|%d|%d", path, size, modTime.UnixNano())
}
