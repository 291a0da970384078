package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func TestObserve(t *testing.T) {
	r := New()
	r.Observe(3, domain.Part1, 2*time.Millisecond, nil)
	r.Observe(3, domain.Part1, time.Millisecond, nil)
	r.Observe(3, domain.Part2, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Total.WithLabelValues("3", "1", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Total.WithLabelValues("3", "2", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.Duration))
}

func TestWriteFile(t *testing.T) {
	r := New()
	r.Observe(15, domain.Part2, time.Second, nil)

	path := filepath.Join(t.TempDir(), "aoc.prom")
	require.NoError(t, r.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(b)
	assert.Contains(t, text, `aoc_solve_total{day="15",part="2",status="ok"} 1`)
	assert.Contains(t, text, "# TYPE aoc_solve_duration_seconds histogram")

	err = testutil.CollectAndCompare(r.Total, strings.NewReader(`
# HELP aoc_solve_total Puzzle parts solved, by outcome.
# TYPE aoc_solve_total counter
aoc_solve_total{day="15",part="2",status="ok"} 1
`), "aoc_solve_total")
	assert.NoError(t, err)
}
