// Package diag provides the per-query diagnostics logger of spec.md §7:
// "logs diagnostics only when verbose". There is no package-level or global
// logger; every top-level query constructs its own via New, tagged with a
// fresh correlation id. query.Compute logs through it directly and reaches
// belief's warnings through belief.WithOnWarning.
package diag
