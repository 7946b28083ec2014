// Package logger is a standardized event logging framework for the shell.
//
// Events are fire-and-forget: a failure to record one never changes what the
// shell does.
package logger
