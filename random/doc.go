// Package random provides the entropy sources used to draw record keys.
//
// Secure draws from crypto/rand and is the default for compilation.
// Seeded wraps a math/rand source so that compiling the same specification
// twice with the same seed yields the same key.
package random
