// Package builtin provides concrete tasks usable out of the box: file
// chunking, executable presence checks, directory creation and line
// counting. Each one implements the task contract and addresses its output
// through the canonical path builder, so an external scheduler can treat
// them like any other task.
package builtin
