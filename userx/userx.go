package userx

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kanengo/coinflip/basex"
	"github.com/kanengo/coinflip/contextx"
	"github.com/kanengo/coinflip/randx"
)

const (
	exampleName  = "bruhtus"
	exampleEmail = "bruhtus@example.com"
)

var ErrCoinLandedOnTails = errors.New("the coin landed on tails")

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type getterOption struct {
	coin *randx.Coin
}

func WithCoin(coin *randx.Coin) func(*getterOption) {
	return func(o *getterOption) {
		if coin != nil {
			o.coin = coin
		}
	}
}

type Getter struct {
	options *getterOption
}

func NewGetter(opts ...func(*getterOption)) *Getter {
	options := &getterOption{
		coin: randx.NewCoin(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Getter{options: options}
}

// MaybeGetUserInfo flips the coin once: heads yields the example user,
// tails yields ErrCoinLandedOnTails.
func (g *Getter) MaybeGetUserInfo(ctx context.Context) basex.Result[UserInfo] {
	outcome := g.options.coin.Flip()
	contextx.Logger(ctx).Debug("coin flipped", slog.String("outcome", outcome.String()))

	if outcome == randx.Heads {
		return basex.ResultOk(UserInfo{
			Name:  exampleName,
			Email: exampleEmail,
		})
	}
	return basex.ResultError[UserInfo](ErrCoinLandedOnTails)
}

var defaultGetter = NewGetter()

func MaybeGetUserInfo() basex.Result[UserInfo] {
	return defaultGetter.MaybeGetUserInfo(context.Background())
}
