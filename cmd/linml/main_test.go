package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linml/pkg/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { errors.SetZerologWarnFunc(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFitOLS(t *testing.T) {
	path := writeCSV(t, "x,y\n1,3\n2,5\n3,7\n4,9\n5,11\n")

	out, _, err := execute(t, "fit", "--data", path, "--header", "--model", "ols")
	require.NoError(t, err)

	assert.Contains(t, out, "model: ols")
	assert.Contains(t, out, "samples: 5")
	assert.Regexp(t, `bias\s+1\.000000`, out)
	assert.Regexp(t, `x\s+2\.000000`, out)
	assert.Regexp(t, `R2\s+1\.000000`, out)
	assert.Contains(t, out, "MSLE")
}

func TestFitRidgeWithPlot(t *testing.T) {
	path := writeCSV(t, "1,-3\n2,-5\n3,-7\n4,-9\n")
	plotPath := filepath.Join(t.TempDir(), "fit.png")

	out, _, err := execute(t, "fit", "--data", path, "--model", "ridge", "--lambda", "0.5", "--plot", plotPath)
	require.NoError(t, err)

	assert.Contains(t, out, "model: ridge")
	assert.Contains(t, out, "x0")
	// 負の目的変数では MSLE を出力しない
	assert.NotContains(t, out, "MSLE")
	_, err = os.Stat(plotPath)
	assert.NoError(t, err)
}

func TestFitLogistic(t *testing.T) {
	path := writeCSV(t, "-2,0\n-1,0\n-0.5,0\n0.5,1\n1,1\n2,1\n")

	out, stderr, err := execute(t, "fit", "--data", path, "--model", "logistic",
		"--lr", "0.5", "--seed", "42", "--max-iter", "2000", "--standardize")
	require.NoError(t, err)

	assert.Contains(t, out, "NLL")
	assert.Regexp(t, `iterations\s+\d+`, out)
	assert.Regexp(t, `accuracy\s+1\.000000`, out)
	if strings.Contains(out, "converged  false") {
		assert.Contains(t, stderr, "failed to converge")
	}
}

func TestFitErrors(t *testing.T) {
	path := writeCSV(t, "1,2\n3,4\n")

	_, _, err := execute(t, "fit", "--data", path, "--model", "lasso")
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))

	_, _, err = execute(t, "fit", "--data", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, _, err = execute(t, "fit")
	assert.Error(t, err)

	_, _, err = execute(t, "fit", "--data", path, "--log-level", "loud")
	assert.Error(t, err)
}

func TestLogLevelFromEnv(t *testing.T) {
	path := writeCSV(t, "1,2\n2,4\n3,6\n")
	t.Setenv(logLevelEnv, "debug")

	_, stderr, err := execute(t, "fit", "--data", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "training started")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "linml dev"))
}
