package logging

// Keys for structured log entries.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig    = "config"
	FieldFormat    = "format"
	FieldJobs      = "jobs"
	FieldLanguages = "languages"

	// Analysis fields.
	FieldLanguage = "language"
	FieldChecks   = "checks"
	FieldIssues   = "issues"
	FieldTokens   = "tokens"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesFailed     = "files_failed"
	FieldIssuesTotal     = "issues_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Check fields.
	FieldCheck = "check"
)
