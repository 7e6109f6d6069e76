package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/keyline-data/keyline/constants"
	"github.com/keyline-data/keyline/utils"
)

// Report accumulates severity-tagged lines for one run. Every line is
// teed to the process log; the accumulated text is bounded by a byte
// limit, lines past it are dropped and counted. The report can be
// truncated after the fact and written into the run folder.
type Report struct {
	mu      sync.Mutex
	limit   int
	lines   []string
	size    int
	dropped int
}

// NewReport returns a report bounded to limit bytes of accumulated
// text. A non-positive limit applies constants.DefaultReportLimit.
func NewReport(limit int) *Report {
	if limit <= 0 {
		limit = constants.DefaultReportLimit
	}
	return &Report{limit: limit}
}

// Infof logs at INFO and appends the line to the report.
func (r *Report) Infof(format string, v ...interface{}) {
	Infof(format, v...)
	r.append("INFO", fmt.Sprintf(format, v...))
}

// Warnf logs at WARN and appends the line to the report.
func (r *Report) Warnf(format string, v ...interface{}) {
	Warnf(format, v...)
	r.append("WARN", fmt.Sprintf(format, v...))
}

// Errorf logs at ERROR and appends the line to the report.
func (r *Report) Errorf(format string, v ...interface{}) {
	Errorf(format, v...)
	r.append("ERROR", fmt.Sprintf(format, v...))
}

func (r *Report) append(level, msg string) {
	line := level + ": " + msg

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size+len(line)+1 > r.limit {
		r.dropped++
		return
	}
	r.lines = append(r.lines, line)
	r.size += len(line) + 1
}

// Truncate shrinks the accumulated text to at most max bytes, dropping
// whole lines from the tail.
func (r *Report) Truncate(max int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.lines) > 0 && r.size > max {
		last := r.lines[len(r.lines)-1]
		r.lines = r.lines[:len(r.lines)-1]
		r.size -= len(last) + 1
		r.dropped++
	}
}

// Len returns the size of the accumulated text in bytes.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Lines returns a copy of the accumulated lines.
func (r *Report) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// String renders the report, ending with a notice when lines were
// dropped by the bound or by Truncate.
func (r *Report) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	for _, line := range r.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if r.dropped > 0 {
		fmt.Fprintf(&b, "... (%d lines dropped)\n", r.dropped)
	}
	return b.String()
}

// Flush writes the rendered report into the run folder, when one is
// configured.
func (r *Report) Flush() error {
	configFolder := viper.GetString(constants.ConfigFolder)
	if configFolder == "" {
		return nil
	}

	name := "report_" + utils.TimestampedFileName(constants.ReportFileExt)
	fullPath := filepath.Join(configFolder, name)

	if err := os.WriteFile(fullPath, []byte(r.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %s", err)
	}

	return nil
}
