// Package application provides application initialization and dependency wiring.
// It loads the tuning asset, bootstraps the process-wide audio output and
// builds the inspector router and HTTP server, keeping the main package
// focused on CLI parsing and orchestration.
package application
