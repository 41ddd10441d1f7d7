// Package validator provides the business rule layer used by the entity
// validators: property results, small composable rules and the aggregate
// result returned when a whole entity is validated.
//
// A property is checked by building an ordered list of Rule values and
// passing them to First, which reports the first failing rule:
//
//	return validator.First("City",
//	    validator.NotBlank(city),
//	    validator.MaxLen(city, 50),
//	)
//
// Entity validators run every property check and merge the outcomes with
// Collect. Collect never stops early, so the aggregate Result carries every
// violation of the entity in declaration order.
//
// # Architecture
//
//   - PropertyResult   – outcome of the checks on one property
//   - Rule             – a Check func paired with the message reported on failure
//   - Violation        – property name and message of one failed property
//   - Result           – aggregate outcome of an entity
//   - ValidationErrors – error view of a failed Result
//
// # Error Handling
//
// Rule failures are data, not errors. Callers that prefer an error return
// can use Result.Err, which yields ValidationErrors; the helpers
// IsValidationError and ExtractValidationErrors recognise it through
// wrapping.
//
// Messages are fixed English sentences ending with a period, for example
// "Maximum 50 characters.".
package validator
