// Package entity contains the core business objects of the project:
// the four aggregate roots, their child entities, the value objects they
// are built from, and the domain events they raise.
package entity

// valueObject is the shared validation contract. Every value object
// implements validate and is only handed out by a constructor that ran it.
type valueObject interface {
	validate() error
}

// newValueObject runs the validation hook at construction time.
func newValueObject[T valueObject](v T) (T, error) {
	if err := v.validate(); err != nil {
		var zero T

		return zero, err
	}

	return v, nil
}
