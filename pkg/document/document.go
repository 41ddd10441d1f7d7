package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/custcheck/pkg/address"
	"github.com/dmitrymomot/custcheck/pkg/argument"
	"github.com/dmitrymomot/custcheck/pkg/customer"
	"github.com/dmitrymomot/custcheck/pkg/money"
	"github.com/dmitrymomot/custcheck/pkg/validator"
)

// Kind selects the entity a document describes.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindAddress  Kind = "address"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindCustomer || k == KindAddress
}

// Report is the outcome of one document in a stream.
type Report struct {
	Index  int
	Result validator.Result
	Err    error
}

var dateLayouts = []string{time.RFC3339, time.DateTime, time.DateOnly}

// Decode parses a single document into a mapping.
func Decode(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return asMapping(raw)
}

// Validate decodes and validates a single document.
func Validate(kind Kind, data []byte) (validator.Result, error) {
	if !kind.Valid() {
		return validator.Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	doc, err := Decode(data)
	if err != nil {
		return validator.Result{}, err
	}
	return validateMapping(kind, doc)
}

// ValidateStream validates every document of a YAML stream. Per-document
// problems are recorded in the report; the returned error is set only when
// the stream itself cannot be decoded.
func ValidateStream(kind Kind, r io.Reader) ([]Report, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	dec := yaml.NewDecoder(r)

	var reports []Report
	for i := 0; ; i++ {
		var raw any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return reports, errors.Join(ErrDecode, fmt.Errorf("document %d: %w", i, err))
		}

		rep := Report{Index: i}
		doc, err := asMapping(raw)
		if err == nil {
			rep.Result, err = validateMapping(kind, doc)
		}
		rep.Err = err
		reports = append(reports, rep)
	}

	return reports, nil
}

// ValidateBytes is ValidateStream over an in-memory stream.
func ValidateBytes(kind Kind, data []byte) ([]Report, error) {
	return ValidateStream(kind, bytes.NewReader(data))
}

func validateMapping(kind Kind, doc map[string]any) (validator.Result, error) {
	if kind == KindAddress {
		return address.ValidateDocument(doc)
	}
	return customer.ValidateDocument(normalizeCustomer(doc))
}

func asMapping(raw any) (map[string]any, error) {
	doc, ok := raw.(map[string]any)
	if !ok || doc == nil {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, argument.TypeOf(raw))
	}
	return doc, nil
}

// normalizeCustomer converts scalar encodings that YAML cannot express
// natively: dates written as strings and amounts written as numbers or
// formatted strings. Values that do not convert are left for the validators
// to reject.
func normalizeCustomer(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if s, ok := doc[customer.KeyLastPurchaseDate].(string); ok {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				out[customer.KeyLastPurchaseDate] = t
				break
			}
		}
	}

	switch v := doc[customer.KeyTotalPurchasesAmount].(type) {
	case int:
		out[customer.KeyTotalPurchasesAmount] = money.New(float64(v))
	case float64:
		out[customer.KeyTotalPurchasesAmount] = money.New(v)
	case string:
		if a, err := money.Parse(v, money.WithErrorOnInvalid()); err == nil {
			out[customer.KeyTotalPurchasesAmount] = a
		}
	}

	return out
}
