package randx

import (
	"math"

	"github.com/bytedance/gopkg/lang/fastrand"
)

type Outcome string

const (
	Heads Outcome = "heads"
	Tails Outcome = "tails"
)

func (o Outcome) String() string {
	return string(o)
}

// Source yields uniformly distributed uint32 values.
type Source func() uint32

type coinOption struct {
	source Source
}

func WithSource(src Source) func(*coinOption) {
	return func(o *coinOption) {
		if src != nil {
			o.source = src
		}
	}
}

type Coin struct {
	options *coinOption
}

func NewCoin(opts ...func(*coinOption)) *Coin {
	options := &coinOption{
		source: fastrand.Uint32,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Coin{options: options}
}

// Flip lands heads when the drawn value is in the upper half of the range.
func (c *Coin) Flip() Outcome {
	if c.options.source() > math.MaxUint32/2 {
		return Heads
	}
	return Tails
}

var defaultCoin = NewCoin()

func FlipCoin() Outcome {
	return defaultCoin.Flip()
}
