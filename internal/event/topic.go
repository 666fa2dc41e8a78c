package event

import "github.com/ytget/galeria/internal/model"

// Topic names a stream of gallery events
type Topic string

const (
	// Scan carries every ScanEvent of every session. Sharing one topic keeps
	// a session's events in publish order for each subscriber.
	Scan          Topic = "scan"
	FolderChanged Topic = "folder-changed"
)

// ScanEventKind tells which fields of a ScanEvent are set
type ScanEventKind int

const (
	// KindImageFound carries one discovered image in Entry
	KindImageFound ScanEventKind = iota
	// KindFolderScanned reports a listed or failed folder in State
	KindFolderScanned
	// KindFolderMissing reports a saved folder that does not exist
	KindFolderMissing
	// KindScanFinished closes the session; Images and Canceled are set
	KindScanFinished
)

var scanEventKindNames = map[ScanEventKind]string{
	KindImageFound:    "image-found",
	KindFolderScanned: "folder-scanned",
	KindFolderMissing: "folder-missing",
	KindScanFinished:  "scan-finished",
}

// String returns the kind name used in logs
func (k ScanEventKind) String() string {
	if name, ok := scanEventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ScanEvent is one step of a scan session
type ScanEvent struct {
	Kind    ScanEventKind
	Session string

	Entry model.ImageEntry
	State model.FolderState

	Images   int
	Canceled bool
}

// ImageFound builds a KindImageFound event
func ImageFound(session string, entry model.ImageEntry) ScanEvent {
	return ScanEvent{Kind: KindImageFound, Session: session, Entry: entry}
}

// FolderScanned builds a KindFolderScanned event
func FolderScanned(session string, state model.FolderState) ScanEvent {
	return ScanEvent{Kind: KindFolderScanned, Session: session, State: state}
}

// FolderMissing builds a KindFolderMissing event
func FolderMissing(session string, state model.FolderState) ScanEvent {
	return ScanEvent{Kind: KindFolderMissing, Session: session, State: state}
}

// ScanFinished builds a KindScanFinished event
func ScanFinished(session string, images int, canceled bool) ScanEvent {
	return ScanEvent{Kind: KindScanFinished, Session: session, Images: images, Canceled: canceled}
}

// FolderChangedEvent is raised by the watcher when image files change on disk
type FolderChangedEvent struct {
	Folder string
	Path   string
}
