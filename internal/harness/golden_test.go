package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Testdata(t *testing.T) {
	for _, name := range []string{"below-1000", "below-ten"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestGoldenPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("suite", "golden", "below-1000.golden"),
		GoldenPath(filepath.Join("suite", "below-1000.yaml")))
}

func TestWriteAndCompareGolden(t *testing.T) {
	dir := t.TempDir()
	path := GoldenPath(filepath.Join(dir, "s.yaml"))

	result, err := Run(&Scenario{Name: "s", Limit: 30})
	require.NoError(t, err)

	require.NoError(t, WriteGolden(path, result))
	match, err := CompareGolden(path, result)
	require.NoError(t, err)
	assert.True(t, match)

	other, err := Run(&Scenario{Name: "s", Limit: 31})
	require.NoError(t, err)
	match, err = CompareGolden(path, other)
	require.NoError(t, err)
	assert.False(t, match)

	require.NoError(t, os.Remove(path))
	_, err = CompareGolden(path, result)
	require.Error(t, err)
}
