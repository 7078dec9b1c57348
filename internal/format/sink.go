package format

import (
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sink receives rendered messages.
type Sink interface {
	Log(msg string)
	Error(msg string)
}

// WriterSink writes messages as lines to io.Writers.
type WriterSink struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewWriterSink writes Log to out and Error to errOut. A nil errOut reuses out.
func NewWriterSink(out, errOut io.Writer) *WriterSink {
	if errOut == nil {
		errOut = out
	}
	return &WriterSink{out: out, err: errOut}
}

func (s *WriterSink) Log(msg string)   { s.write(s.out, msg) }
func (s *WriterSink) Error(msg string) { s.write(s.err, msg) }

func (s *WriterSink) write(w io.Writer, msg string) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(w, msg)
}

// LoggerSink forwards messages to a logrus logger.
type LoggerSink struct {
	Logger *logrus.Logger
}

func (s LoggerSink) Log(msg string) {
	s.Logger.WithField("sink", "chat").Info(strings.TrimRight(msg, "\n"))
}

func (s LoggerSink) Error(msg string) {
	s.Logger.WithField("sink", "chat").Error(strings.TrimRight(msg, "\n"))
}
