package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
	AndroidCommand  = "am"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Pictures folder names
const (
	PicturesDirName        = "Pictures"
	AndroidPicturesDir     = "/sdcard/Pictures"
	AndroidImageMimeType   = "image/*"
	AndroidViewIntent      = "android.intent.action.VIEW"
	AndroidDocumentsPicker = "content://com.android.externalstorage.documents/root/primary/Pictures"
)

// LinuxFileManagers are tried in order when xdg-open fails
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// ErrEmptyPath is returned when an empty path is passed to an open helper
var ErrEmptyPath = errors.New("file path is empty")

// commandRunner runs an external command; replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// DirectoryExists reports whether path exists and is a directory
func DirectoryExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	if IsAndroid() {
		return AndroidPicturesDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, PicturesDirName), nil
}

// OpenFileInManager opens the system file manager with filePath selected
// where the platform supports selection, or its folder otherwise
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch platformName() {
	case OSDarwin:
		return commandRunner(OpenCommand, MacOSSelectFlag, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, WindowsSelectParam+absPath)
	case OSLinux:
		return openFolderLinux(filepath.Dir(absPath))
	case OSAndroid:
		return openFolderAndroid(filepath.Dir(absPath))
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// OpenFileWithDefaultApp opens filePath with the default image viewer
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch platformName() {
	case OSDarwin:
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath)
	case OSLinux:
		return commandRunner(XDGOpenCommand, absPath)
	case OSAndroid:
		return commandRunner(AndroidCommand, "start", "-a", AndroidViewIntent,
			"-d", "file://"+absPath, "-t", AndroidImageMimeType)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func platformName() string {
	if IsAndroid() {
		return OSAndroid
	}
	return runtime.GOOS
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", ErrEmptyPath
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	return absPath, nil
}

// openFolderLinux opens dir; file selection is not standardized on Linux
func openFolderLinux(dir string) error {
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

func openFolderAndroid(dir string) error {
	attempts := [][]string{
		{"start", "-a", AndroidViewIntent, "-d", "file://" + dir},
		{"start", "-a", AndroidViewIntent, "-d", AndroidDocumentsPicker},
		{"start", "-a", "android.settings.INTERNAL_STORAGE_SETTINGS"},
	}
	for _, args := range attempts {
		if err := commandRunner(AndroidCommand, args...); err == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to open file in manager: no suitable file manager found")
}
