// Package format provides well-formatted SQL output for parsed DDL
// statements.
//
// The parser package renders statements in a compact single-line canonical
// form; this package produces the multi-line layout used for files kept
// under version control. Formatting concerns stay out of the parser so the
// canonical form remains stable.
//
// Key features:
//   - One statement per block, always semicolon-terminated
//   - Multi-line CREATE TABLE with configurable indentation
//   - Optional alignment of column data types
//
// Usage:
//
//	// Object-oriented API
//	formatter := format.New(format.Options{IndentSize: 2})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, statements...)
//
//	// Formatting a whole parsed file
//	sql, _ := parser.ParseString("CREATE SCHEMA app; CREATE TABLE app.users (id BIGINT);")
//	var buf bytes.Buffer
//	err := format.FormatSQL(&buf, format.Defaults, sql)
package format
