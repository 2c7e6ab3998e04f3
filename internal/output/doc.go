// Package output provides structured output and error handling for the
// habitmd CLI.
//
// # Printer
//
// The Printer writes command results either as human-readable text or, with
// --json, as a single JSON document:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Println(markdown)
//	printer.Success(map[string]any{"message": "Wrote table", "path": path})
//	printer.Error(err)
//
// Human errors, warnings and status hints go to the writer set with
// WithStderr, so a table piped to a file stays clean.
//
// # Styling
//
// Human output uses lipgloss styles. Colors are disabled when the output is
// not a terminal or when --color=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad arguments, missing or malformed habit file
//	output.ExitSystemError // 2: Unreadable input, failed write
//
// Errors created with NewUserError and NewSystemError carry their exit code,
// which GetExitCode recovers in main.
package output
