// Package export converts rendered habit tables into their output format and
// writes them to disk.
//
// # Formats
//
//   - md: the markdown table exactly as the grid builders render it
//   - html: the same table converted by goldmark's GFM table extension
//
// DetermineFormat picks the format from --format, falling back to the
// output file's extension:
//
//	format, err := export.DetermineFormat(formatFlag, outFlag)
//	content, err := export.Render(format, markdown)
//	err = export.WriteFile(outFlag, content)
//
// Write failures are returned as output system errors (exit code 2).
package export
