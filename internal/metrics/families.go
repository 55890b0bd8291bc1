package metrics

import (
	"fmt"

	"github.com/roach88/cwlink/internal/query"
)

// Statistic names accepted by the console.
const (
	StatSum         = "Sum"
	StatMaximum     = "Maximum"
	StatAverage     = "Average"
	StatSampleCount = "SampleCount"
)

// Family describes one service x measurement combination: the statistic the
// console applies per period bucket and a builder producing the family's
// subtree for a list of resource ids.
type Family struct {
	Service string
	Metric  string
	Stat    string
	Build   func(ids []string) (*query.Clause, error)
}

var builtins = []Family{
	{Service: "ec2", Metric: "network", Stat: StatSum, Build: ec2Network},
	{Service: "ec2", Metric: "packets", Stat: StatMaximum, Build: ec2Packets},
	{Service: "ec2", Metric: "cpu", Stat: StatMaximum, Build: ec2CPU},
	{Service: "ec2", Metric: "statuscheck", Stat: StatAverage, Build: ec2StatusCheck},
	{Service: "ebs", Metric: "iops", Stat: StatSum, Build: ebsIOPS},
	{Service: "ebs", Metric: "mibs", Stat: StatSum, Build: ebsThroughput},
	{Service: "ebs", Metric: "latency", Stat: StatSum, Build: ebsLatency},
	{Service: "efs", Metric: "iops", Stat: StatSampleCount, Build: efsIOPS},
	{Service: "efs", Metric: "mibs", Stat: StatSum, Build: efsThroughput},
}

// Families returns the built-in families in listing order.
func Families() []Family {
	out := make([]Family, len(builtins))
	copy(out, builtins)
	return out
}

// Lookup returns the builder for a service/metric combination.
func Lookup(service, metric string) (Family, error) {
	if service == "efs" && metric == "latency" {
		return Family{}, &UnsupportedError{
			Service: service,
			Metric:  metric,
			Reason:  "latency of EFS cannot be calculated",
		}
	}
	for _, fam := range builtins {
		if fam.Service == service && fam.Metric == metric {
			return fam, nil
		}
	}
	return Family{}, &UnsupportedError{Service: service, Metric: metric}
}

// seriesSet builds the common family shape: one hidden or visible metric
// clause per resource x metric name, optionally paired with a math clause.
// Metric clauses are pushed first, math clauses after, matching the console
// export format for EC2 and EFS graphs.
func seriesSet(namespace, dimensionKey string, ids, names []string, visible bool,
	math func(metricID, resource, name string) (expression, label string)) (*query.Clause, error) {

	clause := query.NewClause()
	var alloc Allocator
	var series, maths []*query.Clause

	for _, resource := range ids {
		dimension := dimensionKey + "=" + resource
		for _, name := range names {
			id := alloc.NextMetric()
			if math != nil {
				expression, label := math(id, resource, name)
				maths = append(maths, Math(alloc.NextMath(), expression, label))
			}
			m, err := Metric(id, namespace, name, dimension, visible)
			if err != nil {
				return nil, err
			}
			series = append(series, m)
		}
	}
	for _, m := range series {
		clause.Push(m)
	}
	for _, m := range maths {
		clause.Push(m)
	}
	return clause, nil
}

func ec2Network(ids []string) (*query.Clause, error) {
	return seriesSet("AWS/EC2", "InstanceId", ids, []string{"NetworkIn", "NetworkOut"}, false,
		func(id, resource, name string) (string, string) {
			return fmt.Sprintf("(%s/1048576)/PERIOD(%s)", id, id),
				fmt.Sprintf("%s %s in MiB/s", resource, name)
		})
}

func ec2Packets(ids []string) (*query.Clause, error) {
	return seriesSet("AWS/EC2", "InstanceId", ids, []string{"NetworkPacketsIn", "NetworkPacketsOut"}, false,
		func(id, resource, name string) (string, string) {
			return fmt.Sprintf("%s/DIFF_TIME(%s)", id, id),
				fmt.Sprintf("%s %s in pps", resource, name)
		})
}

func ec2CPU(ids []string) (*query.Clause, error) {
	return seriesSet("AWS/EC2", "InstanceId", ids, []string{"CPUUtilization"}, true, nil)
}

func ec2StatusCheck(ids []string) (*query.Clause, error) {
	names := []string{"StatusCheckFailed_Instance", "StatusCheckFailed_System"}
	return seriesSet("AWS/EC2", "InstanceId", ids, names, true, nil)
}

// ebsPair builds the read/write EBS pattern: per volume, two math clauses
// followed by the two metric clauses feeding them. EBS graphs interleave
// math and metrics per volume instead of grouping all metrics first.
func ebsPair(ids []string, readMetric, writeMetric string,
	math func(metricID, volume, direction string) (expression, label string)) (*query.Clause, error) {

	clause := query.NewClause()
	var alloc Allocator
	for _, volume := range ids {
		readID := alloc.NextMetric()
		writeID := alloc.NextMetric()

		readExpr, readLabel := math(readID, volume, "read")
		clause.Push(Math(alloc.NextMath(), readExpr, readLabel))
		writeExpr, writeLabel := math(writeID, volume, "write")
		clause.Push(Math(alloc.NextMath(), writeExpr, writeLabel))

		dimension := "VolumeId=" + volume
		for _, ref := range []struct{ id, name string }{
			{readID, readMetric},
			{writeID, writeMetric},
		} {
			m, err := Metric(ref.id, "AWS/EBS", ref.name, dimension, false)
			if err != nil {
				return nil, err
			}
			clause.Push(m)
		}
	}
	return clause, nil
}

func ebsIOPS(ids []string) (*query.Clause, error) {
	return ebsPair(ids, "VolumeReadOps", "VolumeWriteOps",
		func(id, volume, direction string) (string, string) {
			return fmt.Sprintf("%s/PERIOD(%s)", id, id),
				fmt.Sprintf("%s %s IOPS", volume, direction)
		})
}

func ebsThroughput(ids []string) (*query.Clause, error) {
	return ebsPair(ids, "VolumeReadBytes", "VolumeWriteBytes",
		func(id, volume, direction string) (string, string) {
			return fmt.Sprintf("(%s/1048576)/PERIOD(%s)", id, id),
				fmt.Sprintf("%s %s MiB/s", volume, direction)
		})
}

// ebsLatency derives average latency from total time divided by operation
// count; four hidden metrics and two math clauses per volume.
func ebsLatency(ids []string) (*query.Clause, error) {
	clause := query.NewClause()
	var alloc Allocator
	for _, volume := range ids {
		readTimeID := alloc.NextMetric()
		writeTimeID := alloc.NextMetric()
		readOpsID := alloc.NextMetric()
		writeOpsID := alloc.NextMetric()

		clause.Push(Math(alloc.NextMath(),
			fmt.Sprintf("(%s/%s) * 1000", readTimeID, readOpsID),
			volume+" avg read latency (ms/op)"))
		clause.Push(Math(alloc.NextMath(),
			fmt.Sprintf("(%s/%s) * 1000", writeTimeID, writeOpsID),
			volume+" avg write latency (ms/op)"))

		dimension := "VolumeId=" + volume
		for _, ref := range []struct{ id, name string }{
			{readTimeID, "VolumeTotalReadTime"},
			{writeTimeID, "VolumeTotalWriteTime"},
			{readOpsID, "VolumeReadOps"},
			{writeOpsID, "VolumeWriteOps"},
		} {
			m, err := Metric(ref.id, "AWS/EBS", ref.name, dimension, false)
			if err != nil {
				return nil, err
			}
			clause.Push(m)
		}
	}
	return clause, nil
}

// efsIONames are the per-filesystem IO metrics graphed for both EFS
// throughput and EFS IOPS.
var efsIONames = []string{
	"TotalIOBytes",
	"MeteredIOBytes",
	"DataReadIOBytes",
	"DataWriteIOBytes",
	"MetadataWriteIOBytes",
	"MetadataReadIOBytes",
	"MetadataIOBytes",
}

func efsThroughput(ids []string) (*query.Clause, error) {
	return efsIO(ids, "MiB/s")
}

func efsIOPS(ids []string) (*query.Clause, error) {
	return efsIO(ids, "IOPS")
}

func efsIO(ids []string, unit string) (*query.Clause, error) {
	return seriesSet("AWS/EFS", "FileSystemId", ids, efsIONames, false,
		func(id, resource, name string) (string, string) {
			return fmt.Sprintf("(%s/1048576)/PERIOD(%s)", id, id),
				fmt.Sprintf("%s %s in %s", resource, name, unit)
		})
}
