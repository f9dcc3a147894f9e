// Package runner defines the contract for remote agent runners: hosted
// services that execute a prompt against a language model, let the model
// invoke named tool servers, and return the final text output. The search
// agent depends only on the [Runner] interface, so tests can substitute a
// fake and binaries can pick a concrete implementation such as the dedalus
// sub-package.
package runner
