// Package pathutil provides the path helpers the logger relies on:
// expanding a leading "~", probing whether a log target is writable and
// choosing a default log file for the running program.
package pathutil
