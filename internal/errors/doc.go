// Package errors provides structured error handling for ngplus.
//
// Errors carry a Code, a message, optional metadata, and an optional cause:
//
//	err := errors.NotFoundf("draft %s not found", id)
//	err := errors.ArgentCellOverfilled("all argent cells maxed").
//	    WithMeta("health", 4).WithMeta("armor", 4).WithMeta("ammo", 4)
//
// Wrapping preserves the innermost structured code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load draft")
//	}
//
// Checking:
//
//	if errors.IsArgentCellOverfilled(err) {
//	    // surface to the user, nothing was written
//	}
//
// Multi-field validation uses ValidationBuilder, which collapses to a single
// InvalidArgument error with per-field details in metadata.
package errors
