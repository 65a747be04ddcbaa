// Package batch sequences record ingestion and model evaluation for whole
// files.
//
// A [Driver] parses a parameter table or a raw-pairs spectrum, logs every
// record, and hands the ordered result back to the caller. Parameter rows are
// not evaluated automatically: [Rows.Simulate] or [Driver.Evaluate] run them
// through a model on demand, so the evaluator stays independently callable.
//
// [Driver.SelectAndIngest] and [Driver.Evaluate] form the boundary used by an
// interactive shell: the shell obtains a path (file chooser, drag and drop,
// command line) and renders whatever comes back, either an [Ingestion] or a
// human-readable diagnostic.
//
// Parsing is fail-fast. A malformed row aborts the whole file and no partial
// result is returned.
package batch
