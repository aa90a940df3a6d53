// Package liblog provides the sandbox's minimal timestamped logger. A Sink
// writes to the console, a log file, or both. Components that may log accept
// the Logger interface; Discard is the absent value, so a logger is never a
// nilable pointer.
package liblog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type Logger interface {
	Logf(format string, args ...any)
}

// Discard drops all messages.
var Discard Logger = discard{}

type discard struct{}

func (discard) Logf(string, ...any) {}

// Output selects where a Sink writes.
type Output int

const (
	Console Output = iota
	File
	ConsoleAndFile
)

const timestampLayout = "2006-01-02 15:04:05"

type Sink struct {
	outs []io.Writer
	file *os.File
	now  func() time.Time
}

// New creates a sink writing to the given writers. Mostly useful for tests;
// use Open for the console/file outputs.
func New(outs ...io.Writer) *Sink {
	return &Sink{outs: outs, now: time.Now}
}

// Open creates a sink for the given output type. For file outputs the log is
// created at basePath suffixed with the current timestamp.
func Open(output Output, basePath string) (*Sink, error) {
	sink := &Sink{now: time.Now}
	if output == Console || output == ConsoleAndFile {
		sink.outs = append(sink.outs, os.Stdout)
	}
	if output == File || output == ConsoleAndFile {
		name := fmt.Sprintf("%s%s.log", basePath, sink.now().Format("2006-01-02_15-04-05"))
		file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}
		sink.file = file
		sink.outs = append(sink.outs, file)
	}
	return sink, nil
}

// Logf writes one timestamped line to every output. Trailing whitespace of
// the message is trimmed.
func (s *Sink) Logf(format string, args ...any) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), " \t\r\n")
	line := fmt.Sprintf("%s | %s\n", s.now().Format(timestampLayout), message)
	for _, out := range s.outs {
		io.WriteString(out, line)
	}
}

func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
