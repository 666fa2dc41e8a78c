package scan

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/galeria/internal/event"
	"github.com/ytget/galeria/internal/logger"
	"github.com/ytget/galeria/internal/model"
)

// Publisher receives scan events. *event.Broker implements it.
type Publisher interface {
	Publish(topic event.Topic, payload interface{})
}

type request struct {
	ctx     context.Context
	session string
	folders []string
}

// Scanner runs scan sessions on a single background worker
type Scanner struct {
	publisher Publisher
	log       *logger.Logger

	mu      sync.Mutex
	pending *request
	cancel  context.CancelFunc
	session string

	wake      chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewScanner creates a scanner and starts its worker goroutine
func NewScanner(publisher Publisher, log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop()
	}
	s := &Scanner{
		publisher: publisher,
		log:       log,
		wake:      make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}

	s.wg.Add(1)
	go s.run()
	return s
}

// Start queues a scan of folders and returns its session ID. A session that
// is still running or waiting is canceled.
func (s *Scanner) Start(folders []string) string {
	ctx, cancel := context.WithCancel(context.Background())
	session := uuid.NewString()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.session = session
	s.pending = &request{
		ctx:     ctx,
		session: session,
		folders: append([]string(nil), folders...),
	}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	s.log.Info("Scanner", "scan queued", map[string]interface{}{
		"session": session,
		"folders": len(folders),
	})
	return session
}

// Session returns the ID of the most recently started session
func (s *Scanner) Session() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Close cancels any running session and stops the worker
func (s *Scanner) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
		close(s.closed)
	})
	s.wg.Wait()
}

func (s *Scanner) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.closed:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		req := s.pending
		s.pending = nil
		s.mu.Unlock()

		if req != nil {
			s.scanSession(req)
		}
	}
}

func (s *Scanner) scanSession(req *request) {
	total := 0
	for _, folder := range req.folders {
		if req.ctx.Err() != nil {
			break
		}
		total += s.scanFolder(req, folder)
	}

	canceled := req.ctx.Err() != nil
	s.log.Info("Scanner", "scan finished", map[string]interface{}{
		"session":  req.session,
		"images":   total,
		"canceled": canceled,
	})
	s.publisher.Publish(event.Scan, event.ScanFinished(req.session, total, canceled))
}

func (s *Scanner) scanFolder(req *request, folder string) int {
	entries, err := ListImages(req.ctx, folder)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}

		state := model.FolderState{Path: folder, Status: model.FolderStatusError, Error: err.Error()}
		if errors.Is(err, ErrFolderNotFound) {
			state.Status = model.FolderStatusMissing
			s.log.Warning("Scanner", "folder missing", map[string]interface{}{"path": folder})
			s.publisher.Publish(event.Scan, event.FolderMissing(req.session, state))
			return 0
		}

		s.log.Error("Scanner", "folder scan failed", err, map[string]interface{}{"path": folder})
		s.publisher.Publish(event.Scan, event.FolderScanned(req.session, state))
		return 0
	}

	for _, entry := range entries {
		entry.ID = uuid.NewString()
		s.publisher.Publish(event.Scan, event.ImageFound(req.session, entry))
	}

	s.log.Debug("Scanner", "folder scanned", map[string]interface{}{
		"path":   folder,
		"images": len(entries),
	})
	s.publisher.Publish(event.Scan, event.FolderScanned(req.session, model.FolderState{
		Path:   folder,
		Status: model.FolderStatusReady,
		Count:  len(entries),
	}))
	return len(entries)
}
