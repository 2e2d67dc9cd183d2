// Package errors provides the structured error type shared by seqkit packages.
// Every failure a terminal stream operation, the config loader or the
// validator can report is an *AppError carrying a machine-readable ErrorCode,
// so callers branch on codes instead of matching message text.
package errors
