package services

import (
	"Explorer/internal/config"
	"Explorer/internal/repository"
	"Explorer/internal/storage"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var ErrCleaningInProgress = errors.New("cleaning is in progress")

// Janitor removes physical objects that no file row references any more,
// for example after a cascading folder delete could not remove them.
type Janitor struct {
	fileRepository repository.FileRepository
	contentStore   storage.ContentStore
	configuration  *config.Configuration
	logService     LogService
	cleaning       bool
	mutex          sync.Mutex
	cron           *cron.Cron
	now            func() time.Time
}

func NewJanitorService(
	fileRepository repository.FileRepository,
	contentStore storage.ContentStore,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		fileRepository: fileRepository,
		contentStore:   contentStore,
		logService:     logService,
		configuration:  configuration,
		cron:           cron.New(),
		now:            time.Now,
	}
}

// ForceStartCleanCycle runs one sweep in the background.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return ErrCleaningInProgress
	}

	go func() {
		defer j.finish()
		j.startClean(true)
	}()
	return nil
}

func (j *Janitor) StartCleanCycle() error {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	j.logService.Log.WithFields(logrus.Fields{
		"job":  "clean",
		"cron": cronSchedule,
	}).Debug("starting cleaning job")

	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return err
	}
	j.cron.Start()
	return nil
}

// StopClean stops the schedule and waits for a running sweep to finish.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

// Sweep deletes unreferenced objects older than the configured grace
// period and returns how many were removed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	objects, err := j.contentStore.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list stored objects: %w", err)
	}
	paths, err := j.fileRepository.FindStoragePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list referenced objects: %w", err)
	}
	referenced := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		referenced[path] = struct{}{}
	}

	cutoff := j.now().Add(-j.configuration.Server.CleanConfig.GracePeriod)
	var deletedCount int
	for _, object := range objects {
		if _, ok := referenced[object.Path]; ok {
			continue
		}
		// Uploads write the object before the row exists.
		if object.ModTime.After(cutoff) {
			continue
		}
		if err := j.contentStore.Delete(ctx, object.Path); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"path":   object.Path,
				"error":  err.Error(),
			}).Error("Failed to delete orphaned object")
			continue
		}
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "deleting",
			"path":   object.Path,
		}).Debug("deleted orphaned object")
		deletedCount++
	}
	return deletedCount, nil
}

func (j *Janitor) startClean(forced bool) {
	logFields := logrus.Fields{
		"job":    "clean",
		"status": "start",
		"cron":   j.configuration.Server.CleanConfig.Schedule,
	}
	if forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("sweeping orphaned objects")

	deletedCount, err := j.Sweep(context.Background())
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("cleaning job failed")
		return
	}
	if deletedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  deletedCount,
		}).Info("cleaning job finished")
	}
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}
