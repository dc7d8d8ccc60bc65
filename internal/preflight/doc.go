// Package preflight verifies that a machine is ready to run the AVEP
// toolkit before any of its skills are used.
//
// The package checks, in order:
//   - Node.js runtime version (minimum major 18)
//   - npm packages the skills import
//   - Reachability of the zkSync Era testnet API
//   - Optional and required environment variables
//   - Installed skills under ~/.agent/skills
//
// Checks run one after another and never abort the run. Each produces a
// Report whose lines are printed as soon as the check completes:
//
//	checker := preflight.New(preflight.WithConfig(cfg))
//	summary := checker.Run(ctx)
//	os.Exit(summary.ExitCode())
package preflight
