package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cwlink/internal/metrics"
	"github.com/roach88/cwlink/internal/query"
)

var testParams = Params{
	Region: "us-east-1",
	Start:  "2023-01-01T00:00:00Z",
	End:    "2023-01-02T00:00:00Z",
	Stat:   metrics.StatMaximum,
	Period: "300",
}

func TestAssembleShape(t *testing.T) {
	family, err := metrics.Lookup("ec2", "cpu")
	require.NoError(t, err)
	clause, err := family.Build([]string{"i-abc"})
	require.NoError(t, err)

	raw := query.Render(Assemble(clause, testParams))

	assert.True(t, strings.HasPrefix(raw, "~(metrics~("), "got %q", raw)
	assert.True(t, strings.HasSuffix(raw, "~stat~'Maximum~period~300)"), "got %q", raw)
	assert.Contains(t, raw, "~view~'timeSeries~stackec~false~region~'us-east-1")
	assert.Contains(t, raw, "~start~'2023-01-01T00:00:00Z~end~'2023-01-02T00:00:00Z")
	assert.Equal(t, strings.Count(raw, "~("), strings.Count(raw, ")"))
}

func TestURLEndToEnd(t *testing.T) {
	family, err := metrics.Lookup("ec2", "cpu")
	require.NoError(t, err)
	clause, err := family.Build([]string{"i-abc"})
	require.NoError(t, err)

	url := URL(clause, testParams)

	prefix := "https://us-east-1.console.aws.amazon.com/cloudwatch/home?region=us-east-1#metricsV2?graph="
	require.True(t, strings.HasPrefix(url, prefix), "got %q", url)

	fragment := strings.TrimPrefix(url, prefix)
	assert.NotEmpty(t, fragment)
	assert.Contains(t, fragment, "CPUUtilization")
	// Timestamps reach the fragment with their colons escaped lowercase.
	assert.Contains(t, fragment, "~start~'2023-01-01T00*3a00*3a00Z")
	// The fragment never contains a raw percent escape.
	assert.NotContains(t, fragment, "%")
}

func TestURLIsIdempotentAcrossCalls(t *testing.T) {
	family, err := metrics.Lookup("ebs", "iops")
	require.NoError(t, err)

	build := func() string {
		clause, err := family.Build([]string{"vol-1"})
		require.NoError(t, err)
		return URL(clause, testParams)
	}
	assert.Equal(t, build(), build())
}
