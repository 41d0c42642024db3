package config

import (
	"strings"
	"testing"
)

func validJob() Job {
	j := Job{}
	j.ApplyDefaults()
	return j
}

/*
TestValidate exercises the lint rules: path presence, alias-key
normalization, empty reachability groups, storage kinds, and metrics
backends. Each case expects exactly one finding at a known path.
*/
func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Job)
		wantPath string
		wantSev  IssueSeverity
	}{
		{
			name:     "empty_input",
			mutate:   func(j *Job) { j.Input = "" },
			wantPath: "input",
			wantSev:  SeverityError,
		},
		{
			name:     "empty_report_warns",
			mutate:   func(j *Job) { j.Report = "" },
			wantPath: "report",
			wantSev:  SeverityWarning,
		},
		{
			name:     "uppercase_alias_key",
			mutate:   func(j *Job) { j.Aliases = map[string]string{"Correo": "email"} },
			wantPath: `aliases["Correo"]`,
			wantSev:  SeverityWarning,
		},
		{
			name:     "empty_alias_target",
			mutate:   func(j *Job) { j.Aliases = map[string]string{"correo": ""} },
			wantPath: `aliases["correo"]`,
			wantSev:  SeverityError,
		},
		{
			name:     "empty_reachability_group",
			mutate:   func(j *Job) { j.Reachability = [][]string{{}} },
			wantPath: "reachability[0]",
			wantSev:  SeverityError,
		},
		{
			name:     "non_canonical_reachability_field",
			mutate:   func(j *Job) { j.Reachability = [][]string{{"fax"}} },
			wantPath: "reachability[0]",
			wantSev:  SeverityWarning,
		},
		{
			name:     "unknown_storage_kind",
			mutate:   func(j *Job) { j.Storage = Storage{Kind: "oracle", DSN: "x", Table: "t"} },
			wantPath: "storage.kind",
			wantSev:  SeverityError,
		},
		{
			name:     "storage_missing_dsn",
			mutate:   func(j *Job) { j.Storage = Storage{Kind: "postgres", Table: "t"} },
			wantPath: "storage.dsn",
			wantSev:  SeverityError,
		},
		{
			name:     "unknown_metrics_backend",
			mutate:   func(j *Job) { j.Metrics = Metrics{Backend: "statsd"} },
			wantPath: "metrics.backend",
			wantSev:  SeverityWarning,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j := validJob()
			tc.mutate(&j)
			issues := Validate(j)
			if len(issues) != 1 {
				t.Fatalf("issues = %v, want exactly one", issues)
			}
			if issues[0].Path != tc.wantPath || issues[0].Severity != tc.wantSev {
				t.Errorf("issue = %+v, want %s at %s", issues[0], tc.wantSev, tc.wantPath)
			}
		})
	}
}

func TestValidateCleanJob(t *testing.T) {
	if issues := Validate(validJob()); len(issues) != 0 {
		t.Errorf("default job should lint clean, got %v", issues)
	}
}

func TestIssueError(t *testing.T) {
	msg := Issue{SeverityError, "input", "must not be empty"}.Error()
	if !strings.Contains(msg, "error") || !strings.Contains(msg, "input") {
		t.Errorf("Error() = %q", msg)
	}
}
