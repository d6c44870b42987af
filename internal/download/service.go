package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/ytget/rec-viewer/internal/logging"
	"github.com/ytget/rec-viewer/internal/model"
	"github.com/ytget/rec-viewer/internal/platform"
)

const (
	// DefaultRetryDelay is the backoff before the single retry
	DefaultRetryDelay = 2 * time.Second

	// progressInterval throttles progress callbacks
	progressInterval = 250 * time.Millisecond

	maxRetries = 1
)

// Service handles download operations
type Service struct {
	tasks      map[string]*model.DownloadTask
	cancels    map[string]context.CancelFunc
	tasksMutex sync.RWMutex

	// renameMutex serialises picking a free output name
	renameMutex sync.Mutex

	sem         *semaphore.Weighted
	maxParallel int
	downloadDir string
	client      *http.Client
	retryDelay  time.Duration
	onUpdate    func(*model.DownloadTask) // callback for UI updates
	logger      *log.Logger
}

// NewService creates a new download service
func NewService(downloadDir string, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:       make(map[string]*model.DownloadTask),
		cancels:     make(map[string]context.CancelFunc),
		sem:         semaphore.NewWeighted(int64(maxParallel)),
		maxParallel: maxParallel,
		downloadDir: downloadDir,
		client:      &http.Client{},
		retryDelay:  DefaultRetryDelay,
		logger:      logging.With("download"),
	}
}

// SetUpdateCallback sets the callback function for task updates. The
// callback receives a snapshot and may be called from any goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetDownloadDirectory sets the directory for tasks started afterwards
func (s *Service) SetDownloadDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.downloadDir = dir
}

// SetMaxParallelDownloads changes the parallelism bound. Transfers already
// running keep their slot in the previous limit.
func (s *Service) SetMaxParallelDownloads(max int) {
	if max < 1 {
		max = 1
	}
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if max == s.maxParallel {
		return
	}
	s.maxParallel = max
	s.sem = semaphore.NewWeighted(int64(max))
}

// Download starts a download and returns immediately. Errors are logged.
func (s *Service) Download(fileURL, fileName string) {
	if _, err := s.AddTask(fileURL, fileName); err != nil {
		s.logger.Warn("download not started", "url", fileURL, "err", err)
	}
}

// AddTask adds a new download task and starts it as soon as a slot is free
func (s *Service) AddTask(rawURL, fileName string) (*model.DownloadTask, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid download url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %q", u.Scheme)
	}

	s.tasksMutex.Lock()

	// Check for duplicate URLs
	for _, task := range s.tasks {
		if task.URL == rawURL && task.Status.IsActive() {
			s.tasksMutex.Unlock()
			return nil, fmt.Errorf("task already exists for URL: %s", rawURL)
		}
	}

	if fileName == "" {
		fileName = path.Base(u.Path)
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       rawURL,
		FileName:  platform.SanitizeFileName(fileName),
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.tasks[task.ID] = task
	s.cancels[task.ID] = cancel
	sem := s.sem
	dir := s.downloadDir
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notify(&snapshot)
	go s.startTask(ctx, task, sem, dir)

	return &snapshot, nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns snapshots of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	s.tasksMutex.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].StartedAt.Equal(tasks[j].StartedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// StopTask stops a pending or running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}

	if !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", task.Status)
	}

	// Set stopping status
	task.Status = model.TaskStatusStopping
	cancel := s.cancels[id]
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notify(&snapshot)

	// The task goroutine reports Stopped once the transfer unwinds
	cancel()
	return nil
}

// RemoveTask forgets a task, stopping it first if it is still running
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if cancel, ok := s.cancels[id]; ok {
		cancel()
	}
	delete(s.tasks, id)
	delete(s.cancels, id)
	return nil
}

// startTask waits for a slot and runs the transfer
func (s *Service) startTask(ctx context.Context, task *model.DownloadTask, sem *semaphore.Weighted, dir string) {
	defer s.releaseCancel(task.ID)

	if err := sem.Acquire(ctx, 1); err != nil {
		s.finish(ctx, task, "", err)
		return
	}
	defer sem.Release(1)

	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusPending {
		task.Status = model.TaskStatusDownloading
	}
	snapshot := *task
	s.tasksMutex.Unlock()
	s.notify(&snapshot)

	outputPath, err := s.downloadWithRetry(ctx, task, dir)
	s.finish(ctx, task, outputPath, err)
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, task *model.DownloadTask, dir string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}

			s.logger.Info("retrying download", "task", task.ID, "attempt", attempt+1)
		}

		outputPath, err := s.transfer(ctx, task, dir)
		if err == nil {
			return outputPath, nil
		}

		lastErr = err
		s.logger.Warn("download attempt failed", "task", task.ID, "attempt", attempt+1, "err", err)

		// Check if we should retry
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return "", err
		}
	}

	return "", lastErr
}

// transfer fetches the URL into a staging file and renames it into place
func (s *Service) transfer(ctx context.Context, task *model.DownloadTask, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	s.tasksMutex.Lock()
	task.Written = 0
	task.Total = max(resp.ContentLength, 0)
	s.tasksMutex.Unlock()

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	part, err := os.CreateTemp(dir, task.FileName+".*"+platform.PartialSuffix)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	partPath := part.Name()

	throttle := &rate.Sometimes{Interval: progressInterval}
	pw := &progressWriter{
		Writer: part,
		Total:  task.Total,
		OnUpdate: func(written, total int64) {
			s.tasksMutex.Lock()
			task.Written = written
			snapshot := *task
			s.tasksMutex.Unlock()

			throttle.Do(func() { s.notify(&snapshot) })
		},
	}

	_, copyErr := io.Copy(pw, resp.Body)
	closeErr := part.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(partPath)
		if copyErr != nil {
			return "", fmt.Errorf("failed to write file: %w", copyErr)
		}
		return "", fmt.Errorf("failed to close file: %w", closeErr)
	}

	s.renameMutex.Lock()
	defer s.renameMutex.Unlock()

	outputPath := platform.UniqueFilePath(dir, task.FileName)
	if err := os.Rename(partPath, outputPath); err != nil {
		os.Remove(partPath)
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}
	return outputPath, nil
}

// finish records the final status of a task
func (s *Service) finish(ctx context.Context, task *model.DownloadTask, outputPath string, err error) {
	s.tasksMutex.Lock()
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
		task.OutputPath = outputPath
		if task.Total == 0 {
			task.Total = task.Written
		}
	case ctx.Err() != nil:
		task.Status = model.TaskStatusStopped
	default:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	snapshot := *task
	_, tracked := s.tasks[task.ID]
	s.tasksMutex.Unlock()

	switch snapshot.Status {
	case model.TaskStatusCompleted:
		s.logger.Info("download completed",
			"file", snapshot.OutputPath,
			"size", humanize.Bytes(uint64(snapshot.Written)),
			"took", snapshot.FinishedAt.Sub(snapshot.StartedAt).Round(time.Millisecond))
		_ = platform.NotifyMediaScanner(snapshot.OutputPath)
	case model.TaskStatusStopped:
		s.logger.Info("download stopped", "task", snapshot.ID)
	default:
		s.logger.Error("download failed", "task", snapshot.ID, "url", snapshot.URL, "err", snapshot.LastError)
	}

	if tracked {
		s.notify(&snapshot)
	}
}

func (s *Service) releaseCancel(id string) {
	s.tasksMutex.Lock()
	cancel, ok := s.cancels[id]
	delete(s.cancels, id)
	s.tasksMutex.Unlock()
	if ok {
		cancel()
	}
}

// notify calls the update callback if set
func (s *Service) notify(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()
	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.New().String()
}
