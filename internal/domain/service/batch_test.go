package service

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/internal/domain/entity"
	"github.com/qrforge/qrforge/pkg/logger"
	"github.com/qrforge/qrforge/pkg/qr"
)

func TestMain(m *testing.M) {
	if err := logger.Init(logger.Config{}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testTemplate() qr.Config {
	return qr.Config{
		BoxSize:     4,
		Level:       qr.LevelMedium,
		Foreground:  color.RGBA{A: 255},
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		AutoVersion: true,
		QuietZone:   true,
	}
}

func newTestService(t *testing.T) *BatchService {
	t.Helper()
	log, err := logger.Named("batch-test")
	require.NoError(t, err)
	return NewBatchService(log)
}

func collect(events <-chan entity.Event) (progress []entity.Progress, errors []entity.ItemError, completed entity.Completed) {
	for event := range events {
		switch e := event.(type) {
		case entity.Progress:
			progress = append(progress, e)
		case entity.ItemError:
			errors = append(errors, e)
		case entity.Completed:
			completed = e
		}
	}
	return progress, errors, completed
}

func TestBatch_PartialFailure(t *testing.T) {
	s := newTestService(t)
	outDir := t.TempDir()

	events := s.Start(entity.BatchJob{
		Items:     []string{"https://one.example", "", "https://three.example"},
		Template:  testTemplate(),
		OutputDir: outDir,
		Naming:    "qr_{index}",
		Format:    entity.FormatPNG,
	})

	progress, itemErrors, completed := collect(events)

	// A progress event per item, success or not.
	require.Len(t, progress, 3)
	for i, p := range progress {
		assert.Equal(t, i+1, p.Current)
		assert.Equal(t, 3, p.Total)
	}

	require.Len(t, itemErrors, 1)
	assert.Equal(t, 2, itemErrors[0].Index)

	assert.Equal(t, entity.Completed{Success: 2, Failed: 1}, completed)
	assert.Equal(t, entity.StatusCompleted, s.Status())

	for _, name := range []string{"qr_1.png", "qr_2.png", "qr_3.png"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		if name == "qr_2.png" {
			assert.True(t, os.IsNotExist(err), "failed item must not produce a file")
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestBatch_ContentPlaceholderAndFormat(t *testing.T) {
	s := newTestService(t)
	outDir := t.TempDir()

	events := s.Start(entity.BatchJob{
		Items:     []string{"https://one.example/long-path-here"},
		Template:  testTemplate(),
		OutputDir: outDir,
		Naming:    "{index}_{content}",
		Format:    entity.FormatJPEG,
	})
	_, itemErrors, completed := collect(events)

	require.Empty(t, itemErrors)
	assert.Equal(t, entity.Completed{Success: 1, Failed: 0}, completed)

	// First 20 characters of the item, non-word characters replaced.
	_, err := os.Stat(filepath.Join(outDir, "1_https___one_example_.jpg"))
	assert.NoError(t, err)
}

func TestBatch_StopIsCooperative(t *testing.T) {
	s := newTestService(t)

	var processed []int
	s.process = func(job entity.BatchJob, index int, item string) error {
		processed = append(processed, index)
		if index == 2 {
			close(s.stop) // observed before the next item
		}
		return nil
	}

	events := s.Start(entity.BatchJob{
		Items:    []string{"a", "b", "c", "d", "e"},
		Template: testTemplate(),
		Naming:   "qr_{index}",
		Format:   entity.FormatPNG,
	})
	progress, _, completed := collect(events)

	assert.Equal(t, []int{1, 2}, processed)
	assert.Len(t, progress, 2)
	assert.LessOrEqual(t, completed.Success+completed.Failed, 2)
	assert.Equal(t, entity.StatusStopped, s.Status())

	// Stop after the worker exited is a no-op.
	s.Stop()
}

func TestBatch_StartStopsPreviousRun(t *testing.T) {
	s := newTestService(t)

	s.process = func(job entity.BatchJob, index int, item string) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	}

	first := s.Start(entity.BatchJob{
		Items:    make([]string, 100),
		Template: testTemplate(),
		Naming:   "qr_{index}",
		Format:   entity.FormatPNG,
	})

	time.Sleep(20 * time.Millisecond)

	second := s.Start(entity.BatchJob{
		Items:    []string{"x", "y"},
		Template: testTemplate(),
		Naming:   "qr_{index}",
		Format:   entity.FormatPNG,
	})

	// The first run was stopped synchronously before the second started.
	_, _, firstCompleted := collect(first)
	assert.Less(t, firstCompleted.Success+firstCompleted.Failed, 100)

	_, _, secondCompleted := collect(second)
	assert.Equal(t, 2, secondCompleted.Success+secondCompleted.Failed)
	assert.Equal(t, entity.StatusCompleted, s.Status())
}

func TestBatch_ProgressItemTruncated(t *testing.T) {
	s := newTestService(t)
	long := strings.Repeat("https://example.com/", 5) // 100 chars

	s.process = func(job entity.BatchJob, index int, item string) error { return nil }

	events := s.Start(entity.BatchJob{
		Items:    []string{long},
		Template: testTemplate(),
		Naming:   "qr_{index}",
		Format:   entity.FormatPNG,
	})
	progress, _, _ := collect(events)

	require.Len(t, progress, 1)
	assert.Len(t, progress[0].Item, 40)
}

func TestItemFilename(t *testing.T) {
	tests := []struct {
		name   string
		naming string
		index  int
		item   string
		format entity.Format
		want   string
	}{
		{"index only", "qr_{index}", 3, "whatever", entity.FormatPNG, "qr_3.png"},
		{"extension already present", "qr_{index}.png", 1, "x", entity.FormatPNG, "qr_1.png"},
		{"jpeg extension", "qr_{index}", 2, "x", entity.FormatJPEG, "qr_2.jpg"},
		{"content sanitized", "{content}", 1, "hello world!", entity.FormatPNG, "hello_world_.png"},
		{"content truncated to 20", "{content}", 1, strings.Repeat("a", 30), entity.FormatPNG, strings.Repeat("a", 20) + ".png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemFilename(tt.naming, tt.index, tt.item, tt.format))
		})
	}
}
