// Package metrics accumulates the per-run measurements of a grid search:
// algorithm label, visited count, elapsed wall-clock time and path cost.
//
// A Collector is reset at the start of every run (Begin) and finalized by
// Finish, which returns the run's PathResult. Renderers may read a live
// Snapshot from another goroutine while a run is in progress.
//
// Cost is +Inf until a path is found. Elapsed time runs from Begin to Finish.
//
// An optional Exporter mirrors finished runs into Prometheus collectors:
//
//	gridsearch_runs_total{algorithm,found}
//	gridsearch_visited_nodes{algorithm}
//	gridsearch_run_duration_ms{algorithm}
//	gridsearch_path_cost{algorithm}
package metrics
