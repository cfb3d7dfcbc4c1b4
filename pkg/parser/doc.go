// Package parser provides a participle-based parser for a fragment of ANSI
// SQL:2016 DDL.
//
// This package implements a syntax-level front end using
// github.com/alecthomas/participle/v2 that converts standard SQL text for a
// restricted statement set into a strongly typed AST, and renders that AST
// back into canonical SQL text. Supported statements are CREATE SCHEMA,
// DROP SCHEMA, CREATE TABLE, and DROP TABLE, along with the standard's
// scalar data-type grammar (character strings, large objects, binary
// strings, exact and approximate numerics, DECFLOAT, BOOLEAN, and datetime
// types).
//
// Key features:
//   - Type-safe AST with one node per grammar production
//   - Canonical rendering: every node has a String() whose output re-parses
//     to an equal tree
//   - Structured errors with line/column information and a small error
//     taxonomy (lexical, structural, empty list, unrecognized statement)
//   - Exported sub-grammar entry points for data types, qualified names,
//     and referential-integrity fragments
//
// Basic usage:
//
//	// Parse a multi-statement buffer
//	sql, err := parser.ParseString(`
//	    CREATE SCHEMA analytics;
//	    CREATE TABLE analytics.events (id INT, payload VARCHAR(512));
//	    DROP TABLE staging.events CASCADE;
//	`)
//
//	// Consume one statement at a time
//	stmt, rest, err := parser.ParseStatement("CREATE SCHEMA s; DROP SCHEMA s CASCADE;")
//
//	// Parse a bare data type
//	dt, err := parser.ParseDataType("TIME(20) WITH TIME ZONE")
//
// The parsing engine is purely functional: no I/O, no shared mutable state,
// and every entry point is safe for concurrent use over independent inputs.
package parser
