package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kozaktomas/photo-printer/internal/compose"
)

// JobStatus represents the status of an async job.
type JobStatus string

// JobStatus constants define the lifecycle states of an async job.
const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// ComposeJob represents an async compose job. Handlers never encode the
// job directly; they encode a Snapshot taken under the lock.
type ComposeJob struct {
	ID              string
	Status          JobStatus
	TotalPhotos     int
	ProcessedPhotos int
	PagesWritten    int
	Error           string
	StartedAt       time.Time
	CompletedAt     *time.Time
	Result          *compose.Report

	cancel context.CancelFunc
	mu     sync.RWMutex
}

// JobSnapshot is a point-in-time copy of a job, safe for JSON encoding.
type JobSnapshot struct {
	ID              string          `json:"id"`
	Status          JobStatus       `json:"status"`
	TotalPhotos     int             `json:"total_photos"`
	ProcessedPhotos int             `json:"processed_photos"`
	PagesWritten    int             `json:"pages_written"`
	Error           string          `json:"error,omitempty"`
	StartedAt       time.Time       `json:"started_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Result          *compose.Report `json:"result,omitempty"`
}

// Snapshot returns a copy of the job safe for JSON encoding.
func (j *ComposeJob) Snapshot() JobSnapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return JobSnapshot{
		ID:              j.ID,
		Status:          j.Status,
		TotalPhotos:     j.TotalPhotos,
		ProcessedPhotos: j.ProcessedPhotos,
		PagesWritten:    j.PagesWritten,
		Error:           j.Error,
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		Result:          j.Result,
	}
}

// UpdateProgress records pipeline progress on the job.
func (j *ComposeJob) UpdateProgress(info compose.ProgressInfo) {
	j.mu.Lock()
	defer j.mu.Unlock()
	switch info.Phase {
	case "decoding":
		j.TotalPhotos = info.Total
		j.ProcessedPhotos = info.Current
	case "writing":
		j.PagesWritten = info.Current
	}
}

// Finish marks the job completed or failed and stores the outcome.
func (j *ComposeJob) Finish(report *compose.Report, err error) {
	now := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.CompletedAt = &now
	if err != nil {
		if j.Status != JobStatusCancelled {
			j.Status = JobStatusFailed
			j.Error = err.Error()
		}
		return
	}
	j.Status = JobStatusCompleted
	j.Result = report
}

// Cancel cancels the running job.
func (j *ComposeJob) Cancel() {
	j.mu.Lock()
	if j.Status == JobStatusPending || j.Status == JobStatusRunning {
		j.Status = JobStatusCancelled
	}
	cancel := j.cancel
	j.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// JobManager tracks async compose jobs by ID.
type JobManager struct {
	jobs map[string]*ComposeJob
	mu   sync.RWMutex
}

func NewJobManager() *JobManager {
	return &JobManager{jobs: make(map[string]*ComposeJob)}
}

// Create registers a new pending job and returns it.
func (m *JobManager) Create(cancel context.CancelFunc) *ComposeJob {
	job := &ComposeJob{
		ID:        uuid.New().String(),
		Status:    JobStatusPending,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// Get returns the job with the given ID, or nil.
func (m *JobManager) Get(id string) *ComposeJob {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.jobs[id]
}

// MarkRunning transitions a pending job to running.
func (m *JobManager) MarkRunning(job *ComposeJob) {
	job.mu.Lock()
	if job.Status == JobStatusPending {
		job.Status = JobStatusRunning
	}
	job.mu.Unlock()
}
