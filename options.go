package chaintable

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type tableOptions struct {
	slots int
	hash  HashAlgorithm
}

// Option configures a Table at construction time
type Option interface {
	apply(options tableOptions) (tableOptions, error)
}

type optionFunc func(tableOptions) (tableOptions, error)

func (f optionFunc) apply(o tableOptions) (tableOptions, error) {
	return f(o)
}

func newTableOptions(opts ...Option) (tableOptions, error) {
	options := tableOptions{
		slots: DefaultSlots,
		hash:  DefaultHash,
	}
	var errs error
	var err error
	for _, o := range opts {
		options, err = o.apply(options)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return options, errs
}

// WithSlots requests a desired number of slots. The table is created with
// TableSize(slots) slots; a negative count is rejected with ErrInvalidArgument.
// If not set, DefaultSlots is used.
func WithSlots(slots int) Option {
	return optionFunc(func(options tableOptions) (tableOptions, error) {
		size, err := TableSize(slots)
		if err != nil {
			return options, err
		}
		options.slots = size
		return options, nil
	})
}

// WithHash selects the algorithm used for string keys.
// Keys of any other type always use maphash.
func WithHash(alg HashAlgorithm) Option {
	return optionFunc(func(options tableOptions) (tableOptions, error) {
		if !alg.valid() {
			return options, errors.Wrapf(ErrInvalidArgument, "unknown hash algorithm %d", int(alg))
		}
		options.hash = alg
		return options, nil
	})
}
