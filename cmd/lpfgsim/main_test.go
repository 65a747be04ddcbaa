package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-lpfg/dsp/spectra"
	"github.com/cwbudde/algo-lpfg/internal/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, fsys afero.Fs, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut, fsys)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func fixtureFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	testutil.WriteFile(t, fsys, "/data/p.csv", testutil.ParameterTable(
		spectra.Params{A: 2, X0: 1550, W: 10, Bias: 0.1},
		spectra.Params{A: 1, X0: 1545, W: 4, Bias: 0},
	))
	testutil.WriteFile(t, fsys, "/data/m.txt", "1550;-2\n1551;-1\n")
	testutil.WriteFile(t, fsys, "/data/bad.csv", "a,x0,w,bias\n1.0,2.0,abc,4.0\n")
	return fsys
}

func TestRunList(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), "--list")
	require.Equal(t, 0, r.code)
	for _, name := range []string{"lorentzian", "gauss", "hybrid"} {
		assert.Contains(t, r.stdout, name)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintListWriteError(t *testing.T) {
	require.Error(t, printList(failWriter{}))
	require.NoError(t, printList(&bytes.Buffer{}))
}

func TestRunListWriteError(t *testing.T) {
	var errOut bytes.Buffer
	code := run([]string{"--list"}, failWriter{}, &errOut, afero.NewMemMapFs())
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "error: disk full")
}

func TestRunHelp(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), "--help")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stderr, "Usage: lpfgsim")
}

func TestRunBadFlag(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs(), "--bogus")
	assert.Equal(t, 2, r.code)
}

func TestRunNoFiles(t *testing.T) {
	r := runWith(t, afero.NewMemMapFs())
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "error: no file was selected")
}

func TestRunParameterTable(t *testing.T) {
	r := runWith(t, fixtureFs(t), "/data/p.csv")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "== /data/p.csv (parameter-table, 2 records)")
	assert.Contains(t, r.stdout, "1550")
	assert.Contains(t, r.stdout, "0.1")
	assert.NotContains(t, r.stdout, "Resonance")
}

func TestRunHeaderOnlyParameterTable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testutil.WriteFile(t, fsys, "/data/empty.csv", testutil.ParameterTableHeader+"\n")

	r := runWith(t, fsys, "--model", "gauss", "/data/empty.csv")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "== /data/empty.csv (parameter-table, 0 records)")
	assert.Contains(t, r.stdout, "Row")
	assert.Contains(t, r.stdout, "bias")
}

func TestRunModelDump(t *testing.T) {
	r := runWith(t, fixtureFs(t),
		"--model", "lorentzian", "--start", "1540", "--stop", "1560", "--points", "3", "--dump",
		"/data/p.csv")
	require.Equal(t, 0, r.code, r.stderr)

	assert.Contains(t, r.stdout, "Resonance [nm]")
	assert.Contains(t, r.stdout, "# row 1: a=2 x0=1550 w=10 bias=0.1\n")
	assert.Contains(t, r.stdout, "1550;-2.1\n")
	assert.Equal(t, 2, strings.Count(r.stdout, "# row "))
}

func TestRunMeasured(t *testing.T) {
	r := runWith(t, fixtureFs(t), "/data/m.txt")
	require.Equal(t, 0, r.code, r.stderr)

	assert.Contains(t, r.stdout, "== /data/m.txt (raw-pairs, 2 records)\n1: 1550, -2\n2: 1551, -1\n")
	assert.Contains(t, r.stdout, "dip: resonance=1550.0000 nm minimum=-2.0000 depth=1.0000 fwhm=0.5000 nm")
}

func TestRunMeasuredSmoothed(t *testing.T) {
	r := runWith(t, fixtureFs(t), "--smooth", "3", "/data/m.txt")
	require.Equal(t, 0, r.code, r.stderr)

	// Both samples average to -1.5, so the dip is flat.
	assert.Contains(t, r.stdout, "dip: resonance=1550.0000 nm minimum=-1.5000 depth=0.0000 fwhm=0.0000 nm")
}

func TestRunMalformed(t *testing.T) {
	r := runWith(t, fixtureFs(t), "/data/bad.csv", "/data/m.txt")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "error: /data/bad.csv: row 2, column 3 is malformed: not a floating-point number")
	assert.NotContains(t, r.stdout, "/data/bad.csv")
	assert.Contains(t, r.stdout, "== /data/m.txt")
}

func TestRunUnknownModel(t *testing.T) {
	r := runWith(t, fixtureFs(t), "--model", "voigt", "/data/p.csv")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "unknown kind")
}

func TestRunPlot(t *testing.T) {
	fsys := fixtureFs(t)
	r := runWith(t, fsys, "--model", "gauss", "--plot", "/out/dip.svg", "/data/p.csv", "/data/m.txt")
	require.Equal(t, 0, r.code, r.stderr)

	data, err := afero.ReadFile(fsys, "/out/dip.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRunPlotUnsupportedFormat(t *testing.T) {
	r := runWith(t, fixtureFs(t), "--plot", "/out/dip.gif", "/data/m.txt")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "error: plot:")
}

func TestRunConfigFile(t *testing.T) {
	fsys := fixtureFs(t)
	testutil.WriteFile(t, fsys, "/etc/lpfgsim.yaml", "model:\n  name: hybrid\n  selector: 0.9\naxis:\n  points: 11\n")

	r := runWith(t, fsys, "--config", "/etc/lpfgsim.yaml", "/data/p.csv")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "hybrid")
}
