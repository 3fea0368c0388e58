package entity

import (
	"github.com/qrforge/qrforge/pkg/qr"
)

// Format is the output encoding of generated images.
type Format string

const (
	FormatPNG  Format = "PNG"
	FormatJPEG Format = "JPEG"
)

func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// Status is the lifecycle of a batch run: Idle -> Running -> (Completed | Stopped).
type Status int32

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// BatchJob describes one batch run: an ordered list of content strings
// generated against a shared configuration template.
type BatchJob struct {
	ID        string
	Items     []string
	Template  qr.Config // Content is replaced per item
	OutputDir string
	Naming    string // filename template with {index} and {content} placeholders
	Format    Format
}

// Event is a notification from the batch worker to the consumer. Exactly one
// Completed event terminates every run, including stopped ones.
type Event interface {
	batchEvent()
}

// Progress is emitted after every item, regardless of that item's outcome.
type Progress struct {
	Current int // 1-based index of the processed item
	Total   int
	Item    string // truncated item text
}

// ItemError reports a single failed item. It never aborts the batch.
type ItemError struct {
	Index   int
	Message string
}

// Completed carries the final counters of the run.
type Completed struct {
	Success int
	Failed  int
}

func (Progress) batchEvent()  {}
func (ItemError) batchEvent() {}
func (Completed) batchEvent() {}
