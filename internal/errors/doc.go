// Package errors provides structured error handling for the card API.
//
// Every error carries a Code so that callers can branch on the kind of
// failure without string matching, and so the HTTP layer can map failures
// to status codes in one place:
//
//	if err := repo.Get(ctx, input); err != nil {
//		if errors.IsNotFound(err) {
//			// session expired or never existed
//		}
//	}
//
// Wrapping preserves the original code:
//
//	return nil, errors.Wrapf(err, "failed to load session %s", id)
//
// Field-level validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("playerID", input.PlayerID, vb)
//	if err := vb.Build(); err != nil {
//		return nil, err
//	}
package errors
