// Package logging provides structured logging utilities for zoomctl.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Token masking for console output and logs
//   - PII sanitization (email anonymization)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "users.list")
//	logger.Info("fetching users",
//	    logging.Status("success"))
//
// Mask secrets before they reach any output:
//
//	fmt.Println("Access Token:", logging.MaskToken(tok.AccessToken))
//
// # Security Considerations
//
//   - Access tokens are only ever logged through MaskToken
//   - User emails are hashed to prevent PII leakage while allowing correlation
package logging
