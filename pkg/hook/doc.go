/*
Package hook wires the copier into a host toolchain's emit step.

🎯 Purpose:
- Installs a wrapper around the host program's emit entry point
- Runs the copy dispatcher after every emit call, original result untouched
- Hands the host the pass-through transformer its plugin contract expects

🔄 Flow:
 1. Host constructs a program and invokes the plugin entry point once
 2. Install validates the configuration; bad input aborts before wrapping
 3. The wrapped emit calls the original, then runs the configured copies
 4. All emit calls on one program share one processed-destination set

The wrapper never alters the original emit's arguments or result; copying is
a side effect of emitting, not a transformation of compilation output.
*/
package hook
