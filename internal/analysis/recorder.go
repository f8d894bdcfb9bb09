package analysis

import (
	"time"

	"github.com/sirupsen/logrus"
)

const excerptLimit = 200

// Recorder receives execution metadata for every analysis: a truncated
// input excerpt, the outcome, the wall-clock duration, and the error when
// the analysis failed. Implementations must not block the analysis path;
// persistence of these records belongs to the surrounding system.
type Recorder interface {
	Record(excerpt, status string, duration time.Duration, err error)
}

// LogRecorder writes execution records as structured log entries.
type LogRecorder struct {
	log logrus.FieldLogger
}

// NewLogRecorder creates a recorder backed by the given logger. A nil
// logger falls back to the standard logrus logger.
func NewLogRecorder(log logrus.FieldLogger) *LogRecorder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(excerpt, status string, duration time.Duration, err error) {
	entry := r.log.WithFields(logrus.Fields{
		"input":       excerpt,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("analysis execution failed")
		return
	}
	entry.Info("analysis execution completed")
}

// inputExcerpt truncates the analyzed text for audit records.
func inputExcerpt(text string) string {
	if len(text) <= excerptLimit {
		return text
	}
	return text[:excerptLimit] + "..."
}
