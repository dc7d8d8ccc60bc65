// Package logging provides opt-in file-based logging with rotation for avep-verify.
// When the --debug flag is set, structured JSON logs of every check are written
// to ~/.avep/logs/verify.log (and stderr) for troubleshooting a failed run.
//
// Without --debug, records go to stderr through NewConsoleLogger at the
// configured level (AVEP_LOG_LEVEL or logging.level, default info). The checks
// log at debug level, so by default the console report is the only output.
package logging
