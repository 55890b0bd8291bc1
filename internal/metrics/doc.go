// Package metrics builds graph expression subtrees for CloudWatch metric
// families: direct metric references and derived metric-math expressions,
// plus the built-in EC2/EBS/EFS family registry.
//
// Builders are pure. Identifier allocation is explicit: callers thread an
// Allocator through builder calls, so ids stay unique within one query tree
// without any package-level state.
package metrics
