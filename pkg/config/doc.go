/*
Package config manages configuration parsing and validation for emitcopy.

	            +-------------+
	            |   Config    |
	            | (copy list) |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Loader  |   | Loader  |   | Loader  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Defines the copy entry list consumed by the hook and the copier
- Validates configuration shape before any side effect occurs
- Accepts raw host-provided config objects as well as config files

🔄 Flow:
 1. Host (or CLI) hands over configuration
 2. Shape is checked: "copy" must be a list of {src, dest} objects
 3. Entries are validated in order, src before dest, fail-fast
 4. The validated config is immutable for the rest of the run

📝 Design Philosophy:
Validation here is the only gate before filesystem writes happen elsewhere,
so it is strict and happens before the emit hook is installed. Errors are
sentinel-based (ErrMissingEntries, ErrMissingSrc, ErrMissingDest) and always
cite the zero-based index of the offending entry, so a misconfigured build
fails with an actionable message instead of a silent no-op copy.
*/
package config
