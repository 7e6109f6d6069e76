package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportAccumulatesTaggedLines(t *testing.T) {
	r := NewReport(1024)
	r.Infof("checked %d inputs", 2)
	r.Warnf("key %s only on left", "a")
	r.Errorf("rewind failed")

	lines := r.Lines()
	assert.Equal(t, []string{
		"INFO: checked 2 inputs",
		"WARN: key a only on left",
		"ERROR: rewind failed",
	}, lines)
	assert.NotContains(t, r.String(), "dropped")
}

func TestReportBoundDropsExcessLines(t *testing.T) {
	r := NewReport(40)
	for i := 0; i < 10; i++ {
		r.Infof("line number %d with some padding", i)
	}

	assert.LessOrEqual(t, r.Len(), 40)
	assert.Contains(t, r.String(), "lines dropped")
	assert.Less(t, len(r.Lines()), 10)
}

func TestReportTruncate(t *testing.T) {
	r := NewReport(1024)
	r.Infof("first line")
	r.Infof("second line")
	r.Infof("third line")
	before := r.Len()

	r.Truncate(before - 1)
	assert.Less(t, r.Len(), before)
	assert.Contains(t, r.String(), "(1 lines dropped)")
	assert.True(t, strings.HasPrefix(r.String(), "INFO: first line\n"))
}

func TestReportTruncateToZero(t *testing.T) {
	r := NewReport(1024)
	r.Infof("something")
	r.Truncate(0)

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Lines())
	assert.Contains(t, r.String(), "lines dropped")
}
