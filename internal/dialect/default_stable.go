//go:build !nightly

package dialect

// Nightly reports whether the binary was built with the nightly tag.
const Nightly = false

// Default is the target used when neither flags nor c0nst.toml choose one.
func Default() Target { return Legacy }
