// Package editor inserts generated layout blocks into editable documents.
//
// The package does not know about any particular editor. Callers hand it a
// [Target], which reports its cursor, replaces its selection, moves the cursor
// and takes focus. [Insert] then runs the insertion protocol:
//
//  1. Capture the cursor (line, ch) before touching the document.
//  2. Replace the current selection with the block text.
//  3. Move the cursor to (line+3, 3), the first column's content line.
//  4. Focus the target.
//
// A nil target is a NO_ACTIVE_TARGET error and nothing is changed. If the
// replacement itself fails the cursor is left where it was.
//
// [Buffer] is an in-memory [Target] over plain text, used by the CLI to edit
// files on disk and by tests.
package editor
