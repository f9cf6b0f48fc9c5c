package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/clientele/config"
)

// resetFlags clears flag state left behind by an earlier Execute
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var def []string
			if trimmed := strings.Trim(f.DefValue, "[]"); trimmed != "" {
				def = strings.Split(trimmed, ",")
			}
			_ = sv.Replace(def)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args and returns what it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	prev := logDest
	logDest = devNull
	t.Cleanup(func() {
		logDest = prev
		devNull.Close()
		resetFlags(rootCmd)
	})

	for _, name := range []string{
		"GITHUB_TOKEN", "GH_TOKEN", "CLIENTELE_GITHUB_TOKEN", "CLIENTELE_GITHUB_BASE_URL",
		"SENDGRID_API_KEY", "CLIENTELE_SENDGRID_API_KEY",
		"GOOGLE_APPLICATION_CREDENTIALS", "CLIENTELE_SHEETS_CREDENTIALS_FILE",
	} {
		t.Setenv(name, "")
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runsServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/repos/{owner}/{repo}/actions/runs", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "octo", chi.URLParam(req, "owner"))
		assert.Equal(t, "hello", chi.URLParam(req, "repo"))
		assert.Equal(t, "Bearer test-token", req.Header.Get("Authorization"))
		assert.Equal(t, "30", req.URL.Query().Get("per_page"))
		assert.True(t, strings.HasPrefix(req.Header.Get("User-Agent"), "clientele"))

		runs := []map[string]any{
			{"id": 1, "name": "Build", "head_branch": "main", "status": "completed", "conclusion": "failure", "created_at": "2024-05-01T10:00:00Z"},
			{"id": 2, "name": "Build", "head_branch": "main", "status": "completed", "conclusion": "success", "created_at": "2024-05-01T11:00:00Z"},
			{"id": 3, "name": "Deploy", "head_branch": "release", "status": "completed", "conclusion": "failure", "created_at": "2024-05-01T12:00:00Z"},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"total_count": len(runs), "workflow_runs": runs})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func githubConfig(baseURL, extra string) string {
	return fmt.Sprintf(`github:
  token: test-token
  base_url: %s
  owner: octo
  repo: hello
logging:
  level: error
%s`, baseURL, extra)
}

func runIDs(t *testing.T, data []byte, unmarshal func([]byte, any) error) []int {
	t.Helper()
	var runs []struct {
		ID int `json:"id" yaml:"id"`
	}
	require.NoError(t, unmarshal(data, &runs))
	ids := make([]int, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	return ids
}

func TestRunsListFilter(t *testing.T) {
	srv := runsServer(t)
	cfgPath := writeConfig(t, githubConfig(srv.URL, ""))

	out, err := execute(t, "actions", "runs", "list", "--config", cfgPath, "-o", "json",
		"--filter", `conclusion == "failure"`)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, runIDs(t, []byte(out), json.Unmarshal))
}

func TestRunsListPresets(t *testing.T) {
	srv := runsServer(t)
	cfgPath := writeConfig(t, githubConfig(srv.URL, `filters:
  failed: conclusion == "failure"
  main: head_branch == "main"
`))

	tests := []struct {
		name string
		args []string
		want []int
	}{
		{name: "no filter", want: []int{1, 2, 3}},
		{name: "one preset", args: []string{"--preset", "failed"}, want: []int{1, 3}},
		{name: "presets combine", args: []string{"--preset", "failed", "--preset", "main"}, want: []int{1}},
		{name: "preset and expression", args: []string{"-p", "failed", "-f", `name == "Deploy"`}, want: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"actions", "runs", "list", "--config", cfgPath, "-o", "yaml"}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, runIDs(t, []byte(out), yaml.Unmarshal))
		})
	}
}

func TestRunsListTable(t *testing.T) {
	srv := runsServer(t)
	cfgPath := writeConfig(t, githubConfig(srv.URL, ""))

	out, err := execute(t, "actions", "runs", "list", "--config", cfgPath, "--filter", `name == "Deploy"`)
	require.NoError(t, err)
	assert.Contains(t, out, "CONCLUSION")
	assert.Contains(t, out, "release")
	assert.NotContains(t, out, "main")
}

func TestRootErrors(t *testing.T) {
	srv := runsServer(t)
	cfgPath := writeConfig(t, githubConfig(srv.URL, ""))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown preset",
			args:    []string{"--preset", "missing"},
			wantErr: "filter preset 'missing' not found",
		},
		{
			name:    "bad expression",
			args:    []string{"--filter", "conclusion ==="},
			wantErr: "compiling filter",
		},
		{
			name:    "bad output format",
			args:    []string{"-o", "xml"},
			wantErr: "invalid output format",
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "loud"},
			wantErr: "invalid log level",
		},
		{
			name:    "bad repo",
			args:    []string{"--repo", "octo"},
			wantErr: "expected owner/name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"actions", "runs", "list", "--config", cfgPath}, tt.args...)
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "actions", "runs", "list", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestMetricsFile(t *testing.T) {
	srv := runsServer(t)
	cfgPath := writeConfig(t, githubConfig(srv.URL, ""))
	metricsPath := filepath.Join(t.TempDir(), "clientele.prom")

	_, err := execute(t, "actions", "runs", "list", "--config", cfgPath, "-o", "json", "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clientele_http_requests_total")
	assert.Contains(t, string(data), `service="github"`)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3", "2024-05-01")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "clientele v1.2.3 (built 2024-05-01"))
}

func TestNeedsUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
		wantErr bool
	}{
		{name: "older", current: "v1.2.3", latest: "1.3.0", want: true},
		{name: "same", current: "1.2.3", latest: "v1.2.3", want: false},
		{name: "newer", current: "v2.0.0", latest: "1.9.9", want: false},
		{name: "prerelease", current: "1.3.0-rc.1", latest: "1.3.0", want: true},
		{name: "development build", current: "dev", latest: "1.0.0", wantErr: true},
		{name: "bad release", current: "1.0.0", latest: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := needsUpdate(tt.current, tt.latest)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		wantInfo  bool
		wantJSON  bool
		wantLevel string
	}{
		{name: "json warn", cfg: config.LoggingConfig{Level: "warn", Format: "json"}, wantJSON: true},
		{name: "json debug", cfg: config.LoggingConfig{Level: "debug", Format: "json"}, wantInfo: true, wantJSON: true},
		{name: "console", cfg: config.LoggingConfig{Level: "info", Format: "console", Color: true}, wantInfo: true},
		{name: "unknown level falls back to info", cfg: config.LoggingConfig{Level: "", Format: "json"}, wantInfo: true, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := os.Create(filepath.Join(t.TempDir(), "log"))
			require.NoError(t, err)
			defer f.Close()

			log := setupLogger(tt.cfg, f)
			log.Info().Msg("hello")
			log.Warn().Msg("careful")

			data, err := os.ReadFile(f.Name())
			require.NoError(t, err)
			out := string(data)

			assert.Contains(t, out, "careful")
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "hello"))
			if tt.wantJSON {
				line, _, _ := strings.Cut(out, "\n")
				assert.True(t, json.Valid([]byte(line)), line)
			} else {
				// a file is never a terminal, so no color codes
				assert.NotContains(t, out, "\x1b[")
				assert.Contains(t, out, "WRN")
			}
		})
	}
}
