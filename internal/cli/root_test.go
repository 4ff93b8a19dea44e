package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/product-fit/internal/model"
)

// executeCommand runs a fresh root command with args the way a user would and
// captures stdout, stderr and the exit code.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	// cobra falls back to os.Args when the argument slice is nil.
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	code = Execute(cmd)
	return out.String(), errOut.String(), code
}

// TestExecute_TextOutput covers every outcome of the check in the default mode.
func TestExecute_TextOutput(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
		wantCode   model.ExitCode
	}{
		{
			name:       "height that divides the packaging fits",
			args:       []string{"25"},
			wantStdout: "product fits in packaging\n",
			wantCode:   model.ExitSuccess,
		},
		{
			name:       "height equal to the packaging fits",
			args:       []string{"1000"},
			wantStdout: "product fits in packaging\n",
			wantCode:   model.ExitSuccess,
		},
		{
			name:       "height of one fits",
			args:       []string{"1"},
			wantStdout: "product fits in packaging\n",
			wantCode:   model.ExitSuccess,
		},
		{
			name:       "non-divisor does not fit",
			args:       []string{"3"},
			wantStderr: "product does not fit in packaging\n",
			wantCode:   model.ExitSuccess,
		},
		{
			name:       "taller than the packaging does not fit",
			args:       []string{"2000"},
			wantStderr: "product does not fit in packaging\n",
			wantCode:   model.ExitSuccess,
		},
		{
			name:       "zero is rejected",
			args:       []string{"0"},
			wantStderr: "first argument ('product_height') must be non-zero\n",
			wantCode:   model.ExitInvalidInput,
		},
		{
			name:       "missing argument",
			args:       nil,
			wantStderr: "provide an integer as the first argument ('product_height') to this sample app\n",
			wantCode:   model.ExitInvalidInput,
		},
		{
			name:       "not an integer",
			args:       []string{"abc"},
			wantStderr: "first argument ('product_height') must be an integer: invalid syntax\n",
			wantCode:   model.ExitInvalidInput,
		},
		{
			name:       "out of the uint32 range",
			args:       []string{"4294967296"},
			wantStderr: "first argument ('product_height') must be an integer: value out of range\n",
			wantCode:   model.ExitInvalidInput,
		},
		{
			name:       "negative after flag terminator",
			args:       []string{"--", "-5"},
			wantStderr: "first argument ('product_height') must be an integer: invalid syntax\n",
			wantCode:   model.ExitInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := executeCommand(t, tt.args...)
			assert.Equal(t, tt.wantStdout, stdout)
			assert.Equal(t, tt.wantStderr, stderr)
			assert.Equal(t, int(tt.wantCode), code)
		})
	}
}

func TestExecute_TooManyArguments(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "25", "40")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "single argument")
	assert.Equal(t, int(model.ExitInvalidInput), code)
}

func TestExecute_UnknownFlag(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "--depth", "25")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid command line")
	assert.Contains(t, stderr, "depth")
	assert.Equal(t, int(model.ExitInvalidInput), code)
}

// TestExecute_JSONOutput verifies that both verdicts are reported on stdout.
func TestExecute_JSONOutput(t *testing.T) {
	tests := []struct {
		height string
		want   model.FitReport
	}{
		{"25", model.FitReport{Height: 25, PackagingHeight: 1000, Fits: true}},
		{"3", model.FitReport{Height: 3, PackagingHeight: 1000, Fits: false}},
	}

	for _, tt := range tests {
		t.Run(tt.height, func(t *testing.T) {
			stdout, stderr, code := executeCommand(t, "--json", tt.height)
			require.Equal(t, int(model.ExitSuccess), code)
			assert.Empty(t, stderr)

			var got model.FitReport
			require.NoError(t, json.Unmarshal([]byte(stdout), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecute_JSONError(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "--json", "abc")
	assert.Empty(t, stdout)
	assert.Equal(t, int(model.ExitInvalidInput), code)

	var got struct {
		Error struct {
			Message string `json:"message"`
			Detail  string `json:"detail"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &got))
	assert.Equal(t, "first argument ('product_height') must be an integer", got.Error.Message)
	assert.Equal(t, "invalid syntax", got.Error.Detail)
}

func TestExecute_YAMLOutput(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "--yaml", "999")
	require.Equal(t, int(model.ExitSuccess), code)
	assert.Empty(t, stderr)

	var got model.FitReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, model.FitReport{Height: 999, PackagingHeight: 1000, Fits: false}, got)
}

func TestExecute_JSONAndYAMLConflict(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "--json", "--yaml", "25")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "json")
	assert.Equal(t, int(model.ExitInvalidInput), code)
}

// TestExecute_Verbose checks that debug logging goes to stderr and leaves
// the verdict on stdout untouched.
func TestExecute_Verbose(t *testing.T) {
	stdout, stderr, code := executeCommand(t, "-v", "25")
	assert.Equal(t, int(model.ExitSuccess), code)
	assert.Equal(t, "product fits in packaging\n", stdout)
	assert.Contains(t, stderr, "product-fit")
	assert.Contains(t, stderr, "checked packaging fit")
	assert.Contains(t, stderr, "fits=true")
}

func TestExecute_QuietByDefault(t *testing.T) {
	_, stderr, _ := executeCommand(t, "25")
	assert.NotContains(t, stderr, "checked packaging fit")
}

func TestExecute_Version(t *testing.T) {
	stdout, _, code := executeCommand(t, "--version")
	assert.Equal(t, int(model.ExitSuccess), code)
	assert.Contains(t, stdout, "commit:")
}
