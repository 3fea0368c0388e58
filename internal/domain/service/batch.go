package service

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/qrforge/qrforge/internal/domain/entity"
	"github.com/qrforge/qrforge/pkg/logger"
	"github.com/qrforge/qrforge/pkg/qr"
)

var nonWordChars = regexp.MustCompile(`[^\w\-]`)

// BatchService runs at most one batch at a time on a dedicated worker
// goroutine. The only state shared with the worker is the stop channel and
// the event channel; the engine itself is stateless.
type BatchService struct {
	log *logger.Logger

	mu     sync.Mutex // serializes Start/Stop
	stop   chan struct{}
	done   chan struct{}
	status atomic.Int32

	process func(job entity.BatchJob, index int, item string) error
}

func NewBatchService(log *logger.Logger) *BatchService {
	s := &BatchService{log: log}
	s.process = s.processItem
	return s
}

// Status returns the current lifecycle state of the service.
func (s *BatchService) Status() entity.Status {
	return entity.Status(s.status.Load())
}

// Start launches the batch worker and returns its event channel. If a batch
// is already running it is stopped synchronously first. The channel is
// buffered for the whole run and closed after the Completed event.
func (s *BatchService) Start(job entity.BatchJob) <-chan entity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopRunning()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.status.Store(int32(entity.StatusRunning))

	events := make(chan entity.Event, 2*len(job.Items)+1)
	go s.run(job, events, s.stop, s.done)

	s.log.Infof("batch %s started: %d items -> %s", job.ID, len(job.Items), job.OutputDir)
	return events
}

// Stop requests cooperative cancellation and blocks until the worker has
// observed the flag and exited. Remaining items are not processed; the
// Completed event still fires with the counts accumulated so far.
func (s *BatchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRunning()
}

func (s *BatchService) stopRunning() {
	if s.Status() != entity.StatusRunning {
		return
	}
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

func (s *BatchService) run(job entity.BatchJob, events chan<- entity.Event, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer close(events)

	var success, failed int
	total := len(job.Items)
	stopped := false

	for idx, item := range job.Items {
		select {
		case <-stop:
			stopped = true
		default:
		}
		if stopped {
			break
		}

		if err := s.process(job, idx+1, item); err != nil {
			failed++
			events <- entity.ItemError{Index: idx + 1, Message: fmt.Sprintf("failed: %s - %v", truncate(item, 30), err)}
			s.log.Warnf("batch %s item %d failed: %v", job.ID, idx+1, err)
		} else {
			success++
		}

		events <- entity.Progress{Current: idx + 1, Total: total, Item: truncate(item, 40)}
	}

	if stopped {
		s.status.Store(int32(entity.StatusStopped))
	} else {
		s.status.Store(int32(entity.StatusCompleted))
	}

	events <- entity.Completed{Success: success, Failed: failed}
	s.log.Infof("batch %s %s: success=%d failed=%d", job.ID, s.Status(), success, failed)
}

func (s *BatchService) processItem(job entity.BatchJob, index int, item string) error {
	cfg := job.Template
	cfg.Content = item

	img, err := qr.Generate(cfg)
	if err != nil {
		return err
	}

	path := filepath.Join(job.OutputDir, itemFilename(job.Naming, index, item, job.Format))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if job.Format == entity.FormatJPEG {
		return qr.EncodeJPEG(file, img)
	}
	return qr.EncodePNG(file, img)
}

// itemFilename resolves the naming template: {index} is the 1-based position,
// {content} a sanitized excerpt of the item. The format extension is appended
// when the template did not already carry it.
func itemFilename(naming string, index int, item string, format entity.Format) string {
	name := strings.ReplaceAll(naming, "{index}", strconv.Itoa(index))
	name = strings.ReplaceAll(name, "{content}", sanitizeContent(item))

	ext := format.Ext()
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

// sanitizeContent keeps the first 20 characters of the item with every
// non-word character replaced by an underscore.
func sanitizeContent(item string) string {
	return nonWordChars.ReplaceAllString(truncate(item, 20), "_")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
