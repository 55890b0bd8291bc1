package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cwlink/internal/query"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validProfile = `
defaults:
  region: eu-west-1
  period: "60"
families:
  - name: sqs-depth
    namespace: AWS/SQS
    dimension: QueueName
    stat: Maximum
    visible: true
    metrics:
      - ApproximateNumberOfMessagesVisible
  - name: lambda-rate
    namespace: AWS/Lambda
    dimension: FunctionName
    stat: Sum
    metrics:
      - Invocations
      - Errors
    math:
      expression: "{id}/PERIOD({id})"
      label: "{resource} {metric} per second"
`

func TestLoadValidProfile(t *testing.T) {
	cfg, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Defaults.Region)
	assert.Equal(t, "60", cfg.Defaults.Period)
	require.Len(t, cfg.Families, 2)

	fam, ok := cfg.FamilyByName("lambda-rate")
	require.True(t, ok)
	assert.Equal(t, "Sum", fam.Stat)
	require.NotNil(t, fam.Math)

	_, ok = cfg.FamilyByName("missing")
	assert.False(t, ok)
}

func TestLoadRejectsUnknownStat(t *testing.T) {
	_, err := Load(writeProfile(t, `
families:
  - name: bad
    namespace: AWS/SQS
    dimension: QueueName
    stat: P99
    metrics: [Foo]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestLoadRejectsFamilyWithoutMetrics(t *testing.T) {
	_, err := Load(writeProfile(t, `
families:
  - name: bad
    namespace: AWS/SQS
    dimension: QueueName
    stat: Sum
`))
	require.Error(t, err)
}

func TestLoadRejectsNonNumericPeriod(t *testing.T) {
	_, err := Load(writeProfile(t, `
defaults:
  period: fivemin
`))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestBuilderVisibleFamily(t *testing.T) {
	cfg, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)
	fam, ok := cfg.FamilyByName("sqs-depth")
	require.True(t, ok)

	built := Builder(fam)
	assert.Equal(t, "custom", built.Service)
	assert.Equal(t, "Maximum", built.Stat)

	clause, err := built.Build([]string{"orders"})
	require.NoError(t, err)
	assert.Equal(t,
		"~(~(~'AWS/SQS~'ApproximateNumberOfMessagesVisible~'QueueName~'orders~(id~'m1~visible~true)))",
		query.Render(clause))
}

func TestBuilderExpandsMathTemplate(t *testing.T) {
	cfg, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)
	fam, ok := cfg.FamilyByName("lambda-rate")
	require.True(t, ok)

	clause, err := Builder(fam).Build([]string{"checkout"})
	require.NoError(t, err)
	out := query.Render(clause)

	// Two hidden metrics then two math clauses with expanded templates.
	assert.Equal(t, 4, clause.Len())
	assert.Contains(t, out, "~(id~'m1~visible~false)")
	assert.Contains(t, out, "expression~'m1*2fPERIOD*28m1*29")
	assert.Contains(t, out, "~label~'checkout*20Invocations*20per*20second")
	assert.Contains(t, out, "expression~'m2*2fPERIOD*28m2*29")
	assert.Contains(t, out, "~label~'checkout*20Errors*20per*20second")
}
