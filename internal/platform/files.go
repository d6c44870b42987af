package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/ytget/rec-viewer/internal/logging"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// PartialSuffix marks a file that is still being written
const PartialSuffix = ".part"

// DefaultFileName is used when a suggested name sanitizes to nothing
const DefaultFileName = "download"

// Characters not allowed in file names on at least one supported OS
const invalidFileNameChars = `<>:"/\|?*`

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	case OSAndroid:
		return openFileInManagerAndroid(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// openFileInManagerAndroid opens the Downloads folder, falling back to the
// file's directory
func openFileInManagerAndroid(filePath string) error {
	cmd := exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "content://com.android.externalstorage.documents/root/primary/Download")
	if err := cmd.Run(); err == nil {
		return nil
	}

	dir := filepath.Dir(filePath)
	cmd = exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", "file://"+dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open file manager: %w", err)
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	// Fyne Android apps run as libdist.so
	isAndroid := runtime.GOOS == "android" ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"

	if isAndroid {
		// External storage keeps files visible to other apps under Scoped Storage
		return "/sdcard/Download", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFileName turns a suggested name into a safe base name
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(invalidFileNameChars, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, " .")
	if name == "" || name == "_" {
		return DefaultFileName
	}
	return name
}

// UniqueFilePath returns dir/name, or dir/name (N).ext when that exists
func UniqueFilePath(dir, name string) string {
	candidate := filepath.Join(dir, name)
	if !fileExists(candidate) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate = filepath.Join(dir, stem+" ("+strconv.Itoa(i)+")"+ext)
		if !fileExists(candidate) {
			return candidate
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// NotifyMediaScanner notifies Android media scanner about new files
// so downloaded videos appear in the Gallery app
func NotifyMediaScanner(filePath string) error {
	// Only for Android
	if runtime.GOOS != "android" && os.Getenv("ANDROID_DATA") == "" && os.Getenv("ANDROID_ROOT") == "" {
		return nil
	}

	cmd := exec.Command("am", "broadcast", "-a", "android.intent.action.MEDIA_SCANNER_SCAN_FILE", "-d", "file://"+filePath)

	// Don't block the download on the broadcast
	go func() {
		if err := cmd.Run(); err != nil {
			logging.Default.Warn("failed to notify media scanner", "path", filePath, "err", err)
		}
	}()

	return nil
}
