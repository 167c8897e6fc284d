// Package pkg provides the core libraries for multicolumn.
//
// # Overview
//
// Multicolumn writes multi-column layouts for markdown notes as nested
// callouts and turns the widths they declare into CSS when the notes are
// rendered. A two-column block looks like this:
//
//	> [!multi-column]
//	>
//	>> [!col|30]
//	>>
//	>
//	>> [!col|70]
//	>>
//
// The pkg directory is organized into three areas:
//
//  1. Authoring - generate blocks and insert them into documents
//  2. Rendering - map column metadata to inline styles
//  3. Support - settings, strings, errors, hooks, and the HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	preset / custom ratios / column count
//	         ↓
//	    [layout] package (Request → Block)
//	         ↓
//	    [editor] package (insert at the cursor, move the cursor)
//	         ↓
//	    markdown note → callout-aware renderer → HTML
//	         ↓
//	    [width] package (metadata → "flex: 0 0 N%")
//
// # Quick Start
//
//	ratios, _ := layout.ParseRatios("30/70")
//	block, _ := layout.Generate(len(ratios), ratios, layout.FlagBordered)
//
//	buf := editor.NewBuffer(note)
//	buf.SetCursor(editor.Position{Line: 4})
//	cursor, _ := editor.Insert(buf, block)
//
// # Main Packages
//
// [layout] - Block generation, metadata flags, presets, and custom ratio
// parsing.
//
// [editor] - The insertion target interface and an in-memory text buffer
// that implements it.
//
// [width] - The column width mapper, the render pass over an element source,
// and inline style merging. [width/htmldoc] adapts parsed HTML documents.
//
// [settings] - User settings and their TOML file store.
//
// [i18n] - Localized strings for menus, notices, and errors.
//
// [api] - HTTP handlers for editor integrations.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Optional hooks for metrics and tracing.
//
// [buildinfo] - Version information injected at build time.
package pkg
