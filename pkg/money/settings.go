package money

// Settings controls precision, parsing and formatting of an Amount.
type Settings struct {
	Symbol          string
	Separator       string
	Decimal         string
	ErrorOnInvalid  bool
	Precision       int
	Pattern         string // "!" is replaced by the symbol, "#" by the number
	NegativePattern string
	FromCents       bool
	Increment       float64
	GroupSize       int
}

// DefaultSettings returns US dollar settings with two decimal places.
func DefaultSettings() Settings {
	return Settings{
		Symbol:          "$",
		Separator:       ",",
		Decimal:         ".",
		Precision:       2,
		Pattern:         "!#",
		NegativePattern: "-!#",
		GroupSize:       3,
	}
}

// Option configures Settings.
type Option func(*Settings)

func WithSymbol(symbol string) Option {
	return func(s *Settings) { s.Symbol = symbol }
}

func WithSeparator(sep string) Option {
	return func(s *Settings) { s.Separator = sep }
}

func WithDecimal(dec string) Option {
	return func(s *Settings) { s.Decimal = dec }
}

// WithPrecision sets the number of decimal places. Negative values are ignored.
func WithPrecision(precision int) Option {
	return func(s *Settings) {
		if precision >= 0 {
			s.Precision = precision
		}
	}
}

func WithPattern(pattern, negativePattern string) Option {
	return func(s *Settings) {
		if pattern != "" {
			s.Pattern = pattern
		}
		if negativePattern != "" {
			s.NegativePattern = negativePattern
		}
	}
}

// WithFromCents makes New interpret its input as minor units.
func WithFromCents() Option {
	return func(s *Settings) { s.FromCents = true }
}

// WithIncrement rounds formatted output to the nearest multiple of inc.
func WithIncrement(inc float64) Option {
	return func(s *Settings) {
		if inc > 0 {
			s.Increment = inc
		}
	}
}

func WithErrorOnInvalid() Option {
	return func(s *Settings) { s.ErrorOnInvalid = true }
}

func newSettings(opts []Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
