package model

// FolderStatus represents the scan state of a saved folder
type FolderStatus string

const (
	// FolderStatusPending means the folder is queued but not scanned yet
	FolderStatusPending FolderStatus = "Pending"

	// FolderStatusScanning means the worker is listing the folder
	FolderStatusScanning FolderStatus = "Scanning"

	// FolderStatusReady means the folder was listed successfully
	FolderStatusReady FolderStatus = "Ready"

	// FolderStatusMissing means the folder does not exist or is not a directory
	FolderStatusMissing FolderStatus = "Missing"

	// FolderStatusError means listing failed for another reason
	FolderStatusError FolderStatus = "Error"
)

// String returns the string representation of FolderStatus
func (fs FolderStatus) String() string {
	return string(fs)
}

// IsActive returns true while the folder is waiting for or undergoing a scan
func (fs FolderStatus) IsActive() bool {
	return fs == FolderStatusPending || fs == FolderStatusScanning
}

// IsFailed returns true if the last scan of the folder did not succeed
func (fs FolderStatus) IsFailed() bool {
	return fs == FolderStatusMissing || fs == FolderStatusError
}

// FolderState pairs a saved folder with its last known scan result
type FolderState struct {
	Path   string
	Status FolderStatus
	Count  int    // images found in the last scan
	Error  string // last error message if any
}
