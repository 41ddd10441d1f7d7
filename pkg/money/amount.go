package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value.
type Amount struct {
	intValue int64
	scale    int64
	settings Settings
}

// New creates an Amount from a decimal value, or from minor units when
// WithFromCents is given.
func New(value float64, opts ...Option) Amount {
	s := newSettings(opts)
	scale := pow10(s.Precision)

	units := value * float64(scale)
	if s.FromCents {
		units = value
	}

	return Amount{
		intValue: int64(math.Round(units)),
		scale:    scale,
		settings: s,
	}
}

// FromCents creates an Amount from minor units.
func FromCents(cents int64, opts ...Option) Amount {
	return New(float64(cents), append(opts, WithFromCents())...)
}

// Parse reads a formatted amount such as "$1,234.50". Invalid input yields a
// zero Amount, or ErrInvalidAmount when WithErrorOnInvalid is set.
func Parse(str string, opts ...Option) (Amount, error) {
	s := newSettings(opts)

	clean := strings.TrimSpace(str)
	if s.Symbol != "" {
		clean = strings.ReplaceAll(clean, s.Symbol, "")
	}
	if s.Separator != "" {
		clean = strings.ReplaceAll(clean, s.Separator, "")
	}
	if s.Decimal != "" && s.Decimal != "." {
		clean = strings.ReplaceAll(clean, s.Decimal, ".")
	}
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = "-" + strings.Trim(clean, "()")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil {
		if s.ErrorOnInvalid {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, str)
		}
		value = 0
	}

	s.FromCents = false
	return New(value, func(dst *Settings) { *dst = s }), nil
}

func (a Amount) IntValue() int64 { return a.intValue }

func (a Amount) Value() float64 {
	if a.scale == 0 {
		return float64(a.intValue)
	}
	return float64(a.intValue) / float64(a.scale)
}

// Scale is 10 raised to the precision.
func (a Amount) Scale() int64 { return a.scale }

func (a Amount) Settings() Settings { return a.settings }

// Add returns a + b using the settings of a.
func (a Amount) Add(b Amount) Amount {
	a.intValue += a.convert(b)
	return a
}

// Subtract returns a - b using the settings of a.
func (a Amount) Subtract(b Amount) Amount {
	a.intValue -= a.convert(b)
	return a
}

func (a Amount) convert(b Amount) int64 {
	if b.scale == a.scale {
		return b.intValue
	}
	return int64(math.Round(b.Value() * float64(a.scale)))
}

// Format renders the amount using the symbol, separators and patterns of
// its settings.
func (a Amount) Format() string {
	units := a.intValue
	if inc := a.settings.Increment; inc > 0 && a.scale > 0 {
		step := inc * float64(a.scale)
		units = int64(math.Round(float64(units)/step) * step)
	}

	pattern := a.settings.Pattern
	if units < 0 {
		pattern = a.settings.NegativePattern
		units = -units
	}

	whole := strconv.FormatInt(units/max(a.scale, 1), 10)
	number := group(whole, a.settings.Separator, a.settings.GroupSize)
	if a.settings.Precision > 0 {
		frac := strconv.FormatInt(units%a.scale, 10)
		frac = strings.Repeat("0", a.settings.Precision-len(frac)) + frac
		number += a.settings.Decimal + frac
	}

	r := strings.NewReplacer("!", a.settings.Symbol, "#", number)
	return r.Replace(pattern)
}

func (a Amount) String() string {
	return a.Format()
}

func group(digits, sep string, size int) string {
	if sep == "" || size <= 0 || len(digits) <= size {
		return digits
	}

	var b strings.Builder
	head := len(digits) % size
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}
