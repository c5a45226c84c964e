// Package trace2 implements the --trace2-log diagnostic sink: one
// structured log line per git subprocess tig spawns, modeled on
// git-ecosystem/trace2receiver's event shape (event name, session id,
// timestamp, command argv) but writing local structured logs rather than
// forwarding to an OTel collector.
package trace2

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink writes one zap-structured line per subprocess invocation.
type Sink struct {
	logger *zap.Logger
	sid    string
}

// NewSink opens path (truncating any existing content) and returns a Sink
// writing newline-delimited JSON to it. A nil Sink (returned alongside a
// non-nil error) is safe to use: every method becomes a no-op.
func NewSink(path, sid string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	return &Sink{logger: zap.New(core), sid: sid}, nil
}

// Exec records a subprocess about to run, mirroring trace2's "exec" event.
func (s *Sink) Exec(argv []string) {
	if s == nil {
		return
	}
	s.logger.Info("exec",
		zap.String("sid", s.sid),
		zap.String("argv", strings.Join(argv, " ")),
	)
}

// ChildExit records a subprocess's completion, mirroring trace2's
// "child_exit" event.
func (s *Sink) ChildExit(argv []string, dur time.Duration, exitCode int) {
	if s == nil {
		return
	}
	s.logger.Info("child_exit",
		zap.String("sid", s.sid),
		zap.String("argv", strings.Join(argv, " ")),
		zap.Float64("duration_s", dur.Seconds()),
		zap.Int("exit_code", exitCode),
	)
}

// Close flushes buffered entries to the underlying file; the file itself
// is left open.
func (s *Sink) Close() error {
	if s == nil {
		return nil
	}
	return s.logger.Sync()
}
