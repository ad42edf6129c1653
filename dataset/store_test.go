// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doyosae/speechprep/audio"
	"github.com/doyosae/speechprep/internal/audiotest"
	"github.com/doyosae/speechprep/mixing"
)

func TestStore_Paths(t *testing.T) {
	t.Parallel()

	s := NewStore("out", "test_noisy", "test_clean", 16000)
	noisy, clean := s.Paths(0)

	assert.Equal(t, filepath.Join("out", "test_noisy", "test_noisy000001.wav"), noisy)
	assert.Equal(t, filepath.Join("out", "test_clean", "test_clean000001.wav"), clean)

	noisy, _ = s.Paths(41)
	assert.Equal(t, "test_noisy000042.wav", filepath.Base(noisy))
}

func TestStore_Write(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := NewStore(root, "n", "c", 8000)
	require.NoError(t, s.Prepare())

	res := mixing.Result{
		Noisy: audio.NewBuffer(8000, []float64{0.5, -1.5}),
		Clean: audio.NewBuffer(8000, []float64{0.25, -0.75}),
	}
	require.NoError(t, s.Write(2, res))

	noisyPath, cleanPath := s.Paths(2)
	noisy := audiotest.ReadWAV(t, noisyPath)
	clean := audiotest.ReadWAV(t, cleanPath)

	assert.Equal(t, uint16(3), noisy.Format)
	assert.Equal(t, 32, noisy.BitDepth)
	assert.Equal(t, 8000, noisy.SampleRate)
	assert.Equal(t, []float32{0.5, -1.5}, noisy.Float32())
	assert.Equal(t, []float32{0.25, -0.75}, clean.Float32())
}
