package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "parse", "2001-09-09T01:46:40")
	require.NoError(t, err)
	assert.Contains(t, out, "datetime: 2001-09-09T01:46:40\n")
	assert.Contains(t, out, "weekday:  Sunday\n")
	assert.Contains(t, out, "ordinal:  2001-252\n")
	assert.Contains(t, out, "week:     2001-W36-7\n")
	assert.Contains(t, out, "unix:     1000000000\n")

	out, _, err = run(t, "parse", "--display", "20161231235960.5")
	require.NoError(t, err)
	assert.Contains(t, out, "datetime: 2016-12-31 23:59:60.500\n")
	assert.Contains(t, out, "leap:     true\n")

	_, _, err = run(t, "parse", "2001-02-29T00:00:00")
	assert.Error(t, err)
	_, _, err = run(t, "parse")
	assert.Error(t, err)
}

func TestParseCommand_json(t *testing.T) {
	out, _, err := run(t, "parse", "-o", "json", "2016-12-31T23:59:60.5")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2016-12-31T23:59:60.500", got["datetime"])
	assert.Equal(t, "Saturday", got["weekday"])
	assert.Equal(t, true, got["leap"])
}

func TestParseCommand_yaml(t *testing.T) {
	out, _, err := run(t, "parse", "--output", "yaml", "2015-02-18T12:00:00")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2015-W08-3", got["week"])
	assert.Equal(t, "2015-049", got["ordinal"])
}

func TestUnixCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"unix", "1000000000"}, "2001-09-09T01:46:40\n"},
		{[]string{"unix", "--unit", "ms", "--", "-1"}, "1969-12-31T23:59:59.999\n"},
		{[]string{"unix", "-u", "us", "1000000000000001"}, "2001-09-09T01:46:40.000001\n"},
		{[]string{"unix", "--unit", "NS", "1"}, "1970-01-01T00:00:00.000000001\n"},
	} {
		out, _, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}

	_, _, err := run(t, "unix", "--unit", "days", "1")
	assert.Error(t, err)
	_, _, err = run(t, "unix", "12x")
	assert.Error(t, err)
	_, _, err = run(t, "unix", "9223372036854775807")
	assert.Error(t, err)
}

func TestTSCommand(t *testing.T) {
	out, _, err := run(t, "ts", "2001-09-09T01:46:40.5")
	require.NoError(t, err)
	assert.Equal(t, "1000000000\n", out)

	out, _, err = run(t, "ts", "--unit", "ms", "2001-09-09T01:46:40.5")
	require.NoError(t, err)
	assert.Equal(t, "1000000000500\n", out)

	_, _, err = run(t, "ts", "--unit", "ns", "+262143-12-31T23:59:59")
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"add", "2016-12-31T23:59:60.5", "PT0.5S"}, "2017-01-01T00:00:00\n"},
		{[]string{"add", "2020-01-31T00:00:00", "--months", "1"}, "2020-02-29T00:00:00\n"},
		{[]string{"add", "2020-01-31T00:00:00", "--days", "30", "PT1H"}, "2020-03-01T01:00:00\n"},
		{[]string{"add", "2017-01-01T00:00:00", "--sub", "P1D"}, "2016-12-31T00:00:00\n"},
		{[]string{"add", "2017-01-01T00:00:00", "--", "-PT1S"}, "2016-12-31T23:59:59\n"},
	} {
		out, _, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}

	_, _, err := run(t, "add", "+262143-12-31T23:59:59", "PT1S")
	assert.Error(t, err)
	_, _, err = run(t, "add", "2017-01-01T00:00:00", "P1Y")
	assert.Error(t, err)
}

func TestSinceCommand(t *testing.T) {
	out, _, err := run(t, "since", "2016-07-09T03:05:07", "2016-07-08T03:05:07")
	require.NoError(t, err)
	assert.Equal(t, "P1D\n", out)

	out, _, err = run(t, "since", "-o", "json", "2016-07-08T03:05:07", "2016-07-08T03:05:08.5")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "-PT1.500S", got["duration"])
}

func TestWeekCommand(t *testing.T) {
	out, _, err := run(t, "week", "2005-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2004-W53-6\n2005-001\n", out)

	out, _, err = run(t, "week", "2008-12-31T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2009-W01-3\n2008-366\n", out)
}

func TestGTCommand(t *testing.T) {
	out, _, err := run(t, "gt", "2001-09-09T01:46:40.5")
	require.NoError(t, err)
	assert.Equal(t, "20010909014640.5\n", out)

	_, _, err = run(t, "gt", "+10000-01-01T00:00:00")
	assert.Error(t, err)
}

func TestRequireFlag(t *testing.T) {
	_, _, err := run(t, "parse", "--require", "noleap", "2016-12-31T23:59:60")
	assert.Error(t, err)

	_, _, err = run(t, "parse", "--require", "noleap", "2016-12-31T23:59:59")
	assert.NoError(t, err)

	_, _, err = run(t, "parse", "--require", "bogus", "2016-12-31T23:59:59")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	path := writeConfig(t, "civil.toml", "display = true\noutput = \"yaml\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Display: true, Output: "yaml"}, cfg)

	out, _, err := run(t, "--config", path, "add", "2015-02-18T00:00:00", "PT1M")
	require.NoError(t, err)
	assert.Equal(t, "datetime: 2015-02-18T00:01:00\n", out)

	out, _, err = run(t, "--config", path, "--output", "text", "add", "2015-02-18T00:00:00", "PT1M")
	require.NoError(t, err)
	assert.Equal(t, "2015-02-18 00:01:00\n", out)

	path = writeConfig(t, "civil.yml", "require:\n  - noleap\n")
	_, _, err = run(t, "--config", path, "parse", "2016-12-31T23:59:60")
	assert.Error(t, err)
}

func TestConfig_errors(t *testing.T) {
	for _, tc := range []struct {
		name, content string
	}{
		{"civil.toml", "display = \"yes\"\n"},
		{"civil.toml", "colour = true\n"},
		{"civil.yaml", "colour: true\n"},
		{"civil.json", "{}"},
	} {
		_, err := LoadConfig(writeConfig(t, tc.name, tc.content))
		assert.Error(t, err, tc.content)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, "civil.toml", "output = \"xml\"\n")
	_, _, err = run(t, "--config", path, "parse", "2015-02-18T00:00:00")
	assert.Error(t, err)
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "-v", "parse", "2015-02-18T00:00:00")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"parsed"`)
	assert.Contains(t, stderr, `"command":"parse"`)

	_, stderr, err = run(t, "parse", "2015-02-18T00:00:00")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "civil dev")
}
