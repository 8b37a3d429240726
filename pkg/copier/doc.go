/*
Package copier implements the copy dispatcher that runs after each emit.

	+-------------+
	|   Copier    |
	| (Dispatch)  |
	+------+------+
	       |
	 +-----+------+
	 |            |
	+-+--------+ +-+---------+
	| Direct   | | Pattern   |
	| file copy| | engine    |
	+----------+ +-----------+

🎯 Purpose:
- Executes the configured copy entries, strictly in order
- Classifies each entry as a direct file copy or a pattern/directory copy
- Deduplicates by resolved absolute destination path within one run

🔄 Flow:
 1. Resolve the entry's destination to an absolute path
 2. Skip the entry if that destination was already processed this run
 3. Direct copy when the source is an existing regular file and the
    destination has a file-extension-like suffix; otherwise hand the raw
    src/dest strings to the doublestar pattern engine
 4. Record the resolved destination either way

📝 Design Philosophy:
Copy-target identity is the destination's resolved absolute path, not the
source path or a content hash. Two entries with different sources but the
same resolved destination execute only the first copy. Filesystem failures
are wrapped and propagated, never swallowed; the run stops at the first
failing entry.
*/
package copier
