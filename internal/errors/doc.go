// Package errors provides the structured error type used across rpg-spellfx.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for orchestrator configs
//   - Fallback codes for the formatting pipeline
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("spell not found")
//	err := errors.InvalidArgumentf("unknown style: %s", style)
//
// Adding metadata:
//
//	err := errors.NotFound("spell not found").
//	    WithMeta("spell_id", spellID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load spell")
//	}
//
// # Fallback Codes
//
// The formula translator and effect formatters never fail. When they hit
// input they cannot describe precisely they build one of the fallback
// errors, log it at debug level and emit fallback text instead:
//
//	perr := errors.UnrecognizedFormula(raw, "unexpected token ')'")
//	slog.Debug("formula fallback", "error", perr)
//	return Normalize(raw)
//
// errors.IsFallback reports whether an error carries one of these codes.
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Translator == nil {
//	    vb.RequiredField("Translator")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, InvalidArgument)
//   - Wrap redis errors with context
//
// Orchestrator layer:
//   - Validate configs with the ValidationBuilder
//   - Reject nil inputs with InvalidArgument
//   - Never surface fallback codes to callers
//
// Command layer:
//   - Map codes to exit statuses with Code.ExitCode
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Spell not found in the library
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Spell already stored
//   - FailedPrecondition: Operation requirements not met
//   - Internal: Internal error
//   - Unavailable: Library store unreachable
//   - Canceled: Operation canceled
//   - UnrecognizedFormula: No grammar rule accepts a formula
//   - MissingSubConfig: A tagged category has no sub-config
//   - MissingField: A numeric field was absent and defaulted
package errors
