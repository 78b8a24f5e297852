package userx

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/kanengo/coinflip/basex"
	"github.com/kanengo/coinflip/contextx"
	"github.com/kanengo/coinflip/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCoin(v uint32) *randx.Coin {
	return randx.NewCoin(randx.WithSource(func() uint32 { return v }))
}

var (
	headsCoin = fixedCoin(math.MaxUint32)
	tailsCoin = fixedCoin(0)
)

func TestGetterMaybeGetUserInfo(t *testing.T) {
	type args struct {
		coin *randx.Coin
	}
	tests := []struct {
		name        string
		args        args
		wantTag     basex.Tag
		wantPayload any
	}{
		{
			name: "heads",
			args: args{
				coin: headsCoin,
			},
			wantTag: basex.TagSuccess,
			wantPayload: UserInfo{
				Name:  "bruhtus",
				Email: "bruhtus@example.com",
			},
		},
		{
			name: "tails",
			args: args{
				coin: tailsCoin,
			},
			wantTag:     basex.TagError,
			wantPayload: ErrCoinLandedOnTails,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGetter(WithCoin(tt.args.coin))
			tag, payload := g.MaybeGetUserInfo(context.Background()).Unpack()
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantPayload, payload)
		})
	}
}

func TestTailsMessage(t *testing.T) {
	_, err := NewGetter(WithCoin(tailsCoin)).MaybeGetUserInfo(context.Background()).Get()
	require.Error(t, err)
	assert.Equal(t, "the coin landed on tails", err.Error())
}

func TestGetterLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := contextx.WithLogger(context.Background(), logger)

	NewGetter(WithCoin(headsCoin)).MaybeGetUserInfo(ctx)
	assert.Contains(t, buf.String(), "outcome=heads")
}

func TestMaybeGetUserInfo(t *testing.T) {
	const n = 10000
	success := 0
	for i := 0; i < n; i++ {
		r := MaybeGetUserInfo()
		tag, payload := r.Unpack()
		switch tag {
		case basex.TagSuccess:
			success++
			user, ok := payload.(UserInfo)
			require.True(t, ok)
			assert.NotEmpty(t, user.Name)
			assert.NotEmpty(t, user.Email)
		case basex.TagError:
			assert.ErrorIs(t, r.Err(), ErrCoinLandedOnTails)
		default:
			t.Fatalf("unexpected tag %q", tag)
		}
	}

	assert.InDelta(t, 0.5, float64(success)/n, 0.05)
}

func TestMarshalJSON(t *testing.T) {
	data, err := NewGetter(WithCoin(headsCoin)).MaybeGetUserInfo(context.Background()).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["success",{"name":"bruhtus","email":"bruhtus@example.com"}]`, string(data))

	data, err = NewGetter(WithCoin(tailsCoin)).MaybeGetUserInfo(context.Background()).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["error","the coin landed on tails"]`, string(data))
}
