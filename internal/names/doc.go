// Package names provides identifier regularization, collision-free trait
// naming, and schema hashing for the generator.
//
// All functions are deterministic: the same input always produces the same
// output, which keeps regenerated modules byte-identical.
package names
