// Package document decodes customer and address documents written in YAML
// (or JSON, which YAML accepts) and validates them.
//
// Documents are decoded into generic maps, so values of the wrong type reach
// the validators unchanged and are reported as argument errors rather than
// silently dropped by a typed decoder.
//
//	res, err := document.Validate(document.KindCustomer, data)
//	switch {
//	case err != nil:
//	    // undecodable input or a contract violation in the document
//	case !res.IsValid:
//	    // res.Messages lists every violated rule
//	}
//
// ValidateStream handles multi-document YAML streams and returns one Report
// per document.
package document
