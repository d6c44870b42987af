package main

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/rec-viewer/internal/config"
	"github.com/ytget/rec-viewer/internal/download"
	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/platform"
	"github.com/ytget/rec-viewer/internal/share"
	"github.com/ytget/rec-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "dev.recviewer.rec-viewer"
	AppName = "Recording Viewer"

	// DebugEnv enables debug logging when set to any value
	DebugEnv = "REC_VIEWER_DEBUG"
)

func main() {
	logging.Init(os.Getenv(DebugEnv) != "")
	logger := logging.With("main")
	logger.Info("Starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	startup, err := config.ResolveStartup(os.Args[1:])
	if err != nil {
		logger.Fatal("Failed to read startup", "err", err)
	}
	workspace, err := startup.Build()
	if err != nil {
		logger.Fatal("Invalid startup", "err", err)
	}

	presentationSetting := settings.GetPresentation()
	if startup.Presentation != "" {
		presentationSetting = startup.Presentation
	}
	presentation, err := share.ParsePresentation(presentationSetting)
	if err != nil {
		logger.Warn("Unknown presentation, using default", "value", presentationSetting, "err", err)
	}

	opts := ui.Options{
		Workspace:    workspace,
		Presentation: presentation,
	}
	if startup.WebViewerURL != "" {
		opts.WebViewerURL = config.ParseWebViewerURL(startup.WebViewerURL)
		if opts.WebViewerURL == nil {
			logger.Warn("Ignoring invalid web viewer url", "value", startup.WebViewerURL)
		}
	}

	if runtime.GOOS == "js" {
		// the browser owns downloads
		opts.Downloader = platform.NewBrowserDownloader(myApp)
	} else {
		downloadsDir := settings.GetDownloadDirectory()
		if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
			logger.Error("Failed to ensure downloads dir", "dir", downloadsDir, "err", err)
		}
		opts.Downloads = download.NewService(downloadsDir, settings.GetMaxParallelDownloads())
	}

	ui.NewRootUI(myWindow, myApp, settings, opts)

	myWindow.ShowAndRun()
}
