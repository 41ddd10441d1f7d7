package argument

// Arg pairs an argument value with the name reported in error messages.
type Arg struct {
	Name  string
	Value any
}

// Named creates an Arg.
func Named(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Result is the outcome of a single argument check.
// When IsValid is true the remaining fields hold their zero values.
type Result struct {
	IsValid   bool
	Arg       Arg
	ErrorType ErrorType
	Expected  any
}

// Valid returns a passing Result.
func Valid() Result {
	return Result{IsValid: true}
}

// Invalid returns a failing Result for arg.
func Invalid(arg Arg, errType ErrorType, expected any) Result {
	return Result{
		Arg:       arg,
		ErrorType: errType,
		Expected:  expected,
	}
}

// Err returns nil for a valid result and the matching *Error otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return New(r.Arg, r.ErrorType, r.Expected)
}
