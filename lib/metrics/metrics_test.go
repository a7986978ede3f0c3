package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	Init([]string{"CompileError"})
	PairsGenerated.Inc()

	path := filepath.Join(t.TempDir(), "glslbind.prom")
	require.NoError(t, WriteTextfile(path))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "glslbind_pairs_generated_total")
	assert.Contains(t, string(out), `glslbind_pairs_failed_total{kind="CompileError"} 0`)
}

func TestFailedByKind(t *testing.T) {
	before := testutil.ToFloat64(PairsFailed.WithLabelValues("PairingError"))
	PairsFailed.WithLabelValues("PairingError").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(PairsFailed.WithLabelValues("PairingError")))
}
