package gemhunter

import (
	"github.com/sirupsen/logrus"
)

// LogTracer streams the engine's decisions, conflicts, and backtracks to a
// logrus logger at debug level. Useful for stepping through small searches;
// on large grids the volume is substantial, so keep it off hot benchmarks.
type LogTracer struct {
	Log *logrus.Logger
}

// NewLogTracer wraps log in a Tracer. A nil logger uses the logrus standard
// logger.
func NewLogTracer(log *logrus.Logger) *LogTracer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogTracer{Log: log}
}

// OnDecision implements Tracer.
func (t *LogTracer) OnDecision(v Variable, value bool, depth int) {
	t.Log.WithFields(logrus.Fields{
		"var":   v,
		"value": value,
		"depth": depth,
	}).Debug("decision")
}

// OnConflict implements Tracer.
func (t *LogTracer) OnConflict(conflict Clause, depth int) {
	t.Log.WithFields(logrus.Fields{
		"clause": conflict,
		"depth":  depth,
	}).Debug("conflict")
}

// OnBacktrack implements Tracer.
func (t *LogTracer) OnBacktrack(depth int) {
	t.Log.WithField("depth", depth).Debug("backtrack")
}
