package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/gastos-bot/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Classification(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.ObserveClassification(models.TierLocal, 0.001)
	r.ObserveClassification(models.TierLocal, 0.002)
	r.ObserveClassification(models.TierDefault, 0.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ClassificationsTotal.WithLabelValues("LOCAL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ClassificationsTotal.WithLabelValues("DEFAULT")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.ClassificationsTotal.WithLabelValues("REMOTE_FALLBACK")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.ClassificationDuration))
}

func TestRecorder_FailuresAndParses(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.IncStrategyFailure("Remote")
	r.ObserveParse(true)
	r.ObserveParse(true)
	r.ObserveParse(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.StrategyFailuresTotal.WithLabelValues("Remote")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.MessagesParsedTotal.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MessagesParsedTotal.WithLabelValues("missing")))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveClassification(models.TierLocal, 1)
		r.IncStrategyFailure("Remote")
		r.ObserveParse(true)
	})
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := New(prometheus.NewRegistry())
	r.ObserveClassification(models.TierRemoteFallback, 0.01)

	path := filepath.Join(t.TempDir(), "gastos.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gastos_classifications_total{tier="REMOTE_FALLBACK"} 1`)
}

func TestRecorder_WriteTextfile_BadPath(t *testing.T) {
	r := New(prometheus.NewRegistry())
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.ErrorContains(t, err, "failed to write metrics")
}
