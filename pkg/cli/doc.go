// Package cli implements the mockapi command line.
//
//	mockapi                       print the banner
//	mockapi start                 serve the installed mocks
//	mockapi add FILE              install a mock catalog
//	mockapi add-settings FILE     install a settings file
//	mockapi set-default [-f ...]  restore the bundled examples
//	mockapi version               print version information
//
// Main runs the command tree and returns the process exit code so the
// binary and the script tests share one entry point.
package cli
