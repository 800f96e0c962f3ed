package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormix/internal/colour"
)

// execute runs the root command with args and returns stdout and stderr.
// Unless args name a file, a missing one is used so a stray colors.txt in
// the package directory cannot leak in.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	hasFile := false
	for _, a := range args {
		if a == "--file" || a == "-f" {
			hasFile = true
		}
	}
	if !hasFile {
		args = append([]string{"--file", filepath.Join(t.TempDir(), "absent.txt")}, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunMix(t *testing.T) {
	stdout, _, err := execute(t, "0,0,0,0", "ffffffff")
	require.NoError(t, err)

	want := "All colors:\n" +
		colour.MustNew(0, 0, 0, 0).String() + "\n" +
		colour.MustNew(255, 255, 255, 255).String() + "\n" +
		"New color:\n" +
		colour.MustNew(127, 127, 127, 127).String() + "\n"
	assert.Equal(t, want, stdout)
}

func TestRunModes(t *testing.T) {
	tests := []struct {
		mode string
		want colour.Color
	}{
		{"lowest", colour.MustNew(5, 10, 50, 0)},
		{"highest", colour.MustNew(200, 220, 60, 255)},
		{"mix", colour.MustNew(102, 115, 55, 127)},
		{"MIX", colour.MustNew(102, 115, 55, 127)},
		{"bogus", colour.MustNew(102, 115, 55, 127)},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			stdout, _, err := execute(t, "-m", tt.mode, "200,10,50,255", "5,220,60,0")
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(stdout, "New color:\n"+tt.want.String()+"\n"), stdout)
		})
	}
}

func TestRunMixSaturate(t *testing.T) {
	stdout, _, err := execute(t, "--mode", "mix-saturate", "000000", "c82828")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "New color:")
	assert.Contains(t, stdout, colour.MustNew(0, 0, 0, 255).String())
	assert.NotContains(t, stdout, "HEX: #c82828ff", "last colour should be rewritten")
}

func TestRunMixSaturateSingleColour(t *testing.T) {
	stdout, stderr, err := execute(t, "--mode", "mix-saturate", "c82828")
	require.NoError(t, err)

	assert.Equal(t, "All colors:\n"+colour.MustNew(200, 40, 40, 255).String()+"\n", stdout)
	assert.Contains(t, stderr, "not enough colours")
}

func TestRunReportsBadCodesAndContinues(t *testing.T) {
	stdout, stderr, err := execute(t, "zz0011", "1,2,3", "256,0,0,0", "f0a")
	require.NoError(t, err)

	for _, code := range []string{"zz0011", "1,2,3", "256,0,0,0"} {
		assert.Contains(t, stderr, code)
	}
	assert.Contains(t, stdout, "HEX: #ff00aaff")
}

func TestRunNoColours(t *testing.T) {
	stdout, _, err := execute(t, "nope")
	require.NoError(t, err)
	assert.Equal(t, noColoursMessage+"\n", stdout)

	stdout, _, err = execute(t)
	require.NoError(t, err)
	assert.Equal(t, noColoursMessage+"\n", stdout)
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	require.NoError(t, os.WriteFile(path, []byte("ffffffff\n\n"), 0o600))

	stdout, _, err := execute(t, "--file", path, "0,0,0,0")
	require.NoError(t, err)

	all := stdout[:strings.Index(stdout, "New color:")]
	// Arguments come before file codes.
	assert.Less(t, strings.Index(all, "#00000000"), strings.Index(all, "#ffffffff"))
	assert.Contains(t, stdout, "New color:\n"+colour.MustNew(127, 127, 127, 127).String())
}

func TestRunTableFormat(t *testing.T) {
	stdout, _, err := execute(t, "--format", "table", "--preview", "never", "ff0000", "0000ff")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"#", "HEX", "RGBA", "HUE", "SATURATION", "LIGHTNESS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "#ff0000ff", "(255,0,0,255)", "0.00", "1.0000", "0.5000"}, strings.Fields(lines[2]))
	assert.Equal(t, "new", strings.Fields(lines[4])[0])
	assert.Equal(t, "#7f007fff", strings.Fields(lines[4])[1])
}

func TestRunTablePreview(t *testing.T) {
	stdout, _, err := execute(t, "--format", "table", "--preview", "always", "ff0000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PREVIEW")
	assert.Contains(t, stdout, colour.Swatch(colour.MustNew(255, 0, 0, 255), swatchWidth))
}

func TestRunTextPreview(t *testing.T) {
	stdout, _, err := execute(t, "--preview", "always", "ff0000")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\tPreview: "+colour.Swatch(colour.MustNew(255, 0, 0, 255), swatchWidth))

	stdout, _, err = execute(t, "ff0000")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Preview:", "auto preview is off when not a terminal")
}

func TestRunJSONFormat(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json", "-m", "highest", "100,0,0,0", "0,100,0,255")
	require.NoError(t, err)

	var doc struct {
		Mode    string `json:"mode"`
		Count   int    `json:"count"`
		Colours []struct {
			Hex string `json:"hex"`
		} `json:"colours"`
		New *struct {
			Hex string `json:"hex"`
		} `json:"new"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "highest", doc.Mode)
	assert.Equal(t, 2, doc.Count)
	require.NotNil(t, doc.New)
	assert.Equal(t, "#646400ff", doc.New.Hex)
}

func TestRunJSONNoColours(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.EqualValues(t, 0, doc["count"])
	assert.NotContains(t, doc, "new")
}

func TestRunJSONNoColoursKeepsMode(t *testing.T) {
	stdout, _, err := execute(t, "-o", "json", "-m", "highest")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "highest", doc["mode"])
	assert.EqualValues(t, 0, doc["count"])
}

func TestRunFileWithLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	content := "ff0000\n" + strings.Repeat("a", 70000) + "\n00ff00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	stdout, stderr, err := execute(t, "--file", path, "0000ff")
	require.NoError(t, err)

	for _, hex := range []string{"#0000ffff", "#ff0000ff", "#00ff00ff"} {
		assert.Contains(t, stdout, "HEX: "+hex)
	}
	assert.Contains(t, stdout, "New color:\n"+colour.MustNew(85, 85, 85, 255).String())
	assert.Contains(t, stderr, "cannot load colour")
}

func TestRunInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "fff")
	assert.Error(t, err)
}

func TestRunQuietSuppressesWarnings(t *testing.T) {
	_, stderr, err := execute(t, "-q", "zz0011", "fff")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRunConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "colormix.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("mode: lowest\n"), 0o600))

	stdout, _, err := execute(t, "--config", cfg, "200,10,50,255", "5,220,60,0")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, colour.MustNew(5, 10, 50, 0).String()+"\n"), stdout)
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(stdout.String(), "colormix version "), stdout.String())
}

func TestWantPreview(t *testing.T) {
	assert.True(t, wantPreview("always", false))
	assert.False(t, wantPreview("never", true))
	assert.True(t, wantPreview("auto", true))
	assert.False(t, wantPreview("auto", false))
}
