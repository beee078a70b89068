// Package reconcile computes and applies the mutations that bring a parsed
// project manifest in line with the filesystem, or with an explicit add or
// remove request.
//
// # Planning and Applying
//
// Every operation is split into two halves. The Plan* functions inspect the
// model and return a Plan: an ordered list of actions, per-item issues for
// anything skipped (already tracked, not tracked, excluded), and aggregate
// counts. Planning never mutates the model, so a plan can be rendered,
// diffed, or discarded freely.
//
// Apply executes a plan through the model's accessors, resolving each action
// by display name at execution time. Actions that are already satisfied are
// skipped, which makes applying a plan twice harmless. Apply refuses to run
// unless the options carry Confirmed with DryRun off.
//
// # Operations
//
//   - PlanAdd registers requested source paths.
//   - PlanRemove deletes every entry for the named files.
//   - PlanSync diffs tracked names against a filesystem scan, removing
//     stale entries and adding untracked files.
//   - PlanClean collapses duplicate entries onto the first-seen
//     identifiers and drops dangling build files.
//   - PlanRebuild discards all tracked entries and re-adds the scan
//     result with fresh identifiers.
//
// # Usage Example
//
//	m, err := manifest.Parse(data)
//	if err != nil {
//	    return err
//	}
//	entries, err := scanner.Scan()
//	if err != nil {
//	    return err
//	}
//
//	plan := reconcile.PlanSync(m, cfg, entries)
//	if plan.Changed() {
//	    gen := ident.NewGenerator(m.Identifiers())
//	    _, err = reconcile.Apply(m, gen, cfg, plan, reconcile.Options{Confirmed: true})
//	}
package reconcile
