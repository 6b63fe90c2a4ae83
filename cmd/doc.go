// Package cmd wires the konig CLI: build constructs and prints one shape,
// sample and dsu are thin diagnostics exercising the sampler and dsu
// packages directly. Grounded on nektos-act/cmd's cobra.Command wiring and
// logrus verbose-flag gating.
package cmd
