// Package shell implements the interactive loop of minish: reading a line,
// splitting it into words, running builtins in-process and launching
// everything else as a child process the shell waits on.
package shell
