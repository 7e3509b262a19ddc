// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

// Package event defines the event records produced by native backends and
// the queue the application drains once per iteration.
//
// Events are plain tagged values: the Type field selects the variant and
// only DropFiles carries a payload. The zero Event has Type None, which is
// also the sentinel returned by an empty queue.
package event

// Type identifies the kind of an Event.
type Type uint8

const (
	// None is the sentinel type returned when the queue is empty.
	// It is the zero value, so a zero Event means "no event this tick".
	None Type = iota

	// DropFiles reports files dragged and dropped onto the display window.
	// The Files field holds the payload.
	DropFiles

	// CloseRequest reports that the user or the window manager asked to
	// close the display window. The application decides whether to honor it.
	CloseRequest
)

// String returns the name of the event type.
func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case DropFiles:
		return "DropFiles"
	case CloseRequest:
		return "CloseRequest"
	default:
		return "Unknown"
	}
}

// Event is a single record delivered through a Queue.
type Event struct {
	// Type selects the variant.
	Type Type

	// Files is the ordered list of dropped paths, UTF-8 encoded.
	// It is populated only when Type is DropFiles.
	Files []string
}
