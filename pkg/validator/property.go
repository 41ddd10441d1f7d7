package validator

import "github.com/dmitrymomot/custcheck/pkg/argument"

// StringRule builds a Rule for a string value.
type StringRule func(value string) Rule

// MaxLenRule is MaxLen as a StringRule.
func MaxLenRule(max int) StringRule {
	return func(value string) Rule { return MaxLen(value, max) }
}

// OneOfRule is OneOf as a StringRule.
func OneOfRule(options ...string) StringRule {
	return func(value string) Rule { return OneOf(value, options...) }
}

// StringProperty validates a string attribute of an entity.
//
// A null value is reported as MsgRequired, or accepted when Optional is set.
// Any other non-string value is a contract violation and is returned as an
// *argument.Error naming Arg. Strings are then checked for blankness and
// against Rules, in that order.
type StringProperty struct {
	Arg      string
	Name     string
	Optional bool
	Rules    []StringRule
}

// Validate checks v against the property definition.
func (p StringProperty) Validate(v any) (PropertyResult, error) {
	if argument.IsNull(v) {
		if p.Optional {
			return Valid(), nil
		}
		return Invalid(p.Name, MsgRequired), nil
	}

	if err := argument.Validate(argument.Named(p.Arg, v), argument.TypeString, !p.Optional).Err(); err != nil {
		return PropertyResult{}, err
	}

	s, _ := argument.StringValue(v)
	rules := make([]Rule, 0, len(p.Rules)+1)
	rules = append(rules, NotBlank(s))
	for _, r := range p.Rules {
		rules = append(rules, r(s))
	}

	return First(p.Name, rules...), nil
}
