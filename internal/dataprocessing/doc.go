// Package dataprocessing implements the cleaning, date-alignment and join
// pipeline that turns two raw tabular datasets (per-trade executions and the
// daily fear/greed index) into a merged, analyzable table.
//
// # Architecture
//
// The package is organized as a chain of whole-table transformations:
//
// 1. Loader: reads CSV or Excel files into a RawTable
// 2. Validator: asserts required columns before anything else runs
// 3. Timestamp normalizer: ordered parser strategies producing a canonical date
// 4. Numeric coercer: numeric-or-missing conversion, never a hard failure
// 5. Cleaner: per-table orchestration with row pruning and warning capture
// 6. Merger: inner equality join on canonical date
// 7. Aggregator: per-sentiment descriptive statistics
//
// # Data Flow
//
//	CSV/XLSX → RawTable → Cleaner → TradeTable/SentimentTable → Merger → MergedTable → Aggregator
//
// The two input tables are cleaned independently; a failure in one leaves the
// other's pipeline unaffected. The Pipeline type runs the two cleaning legs
// concurrently and serializes the merge after both complete.
//
// # Error Handling
//
// Stages fail closed with typed errors (LOAD, VALIDATION, FORMAT). Per-value
// parse failures never escalate: they degrade to missing values which the
// cleaner prunes, surfacing structured warning records and a prune count with
// each result. A zero-row clean or join is the distinguished EMPTY_RESULT
// outcome, not a stage failure.
package dataprocessing
