package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/kanengo/coinflip/basex"
	"github.com/kanengo/coinflip/contextx"
	"github.com/kanengo/coinflip/slicex"
	"github.com/kanengo/coinflip/userx"
	"github.com/urfave/cli/v2"
)

type summary struct {
	Total   int     `json:"total"`
	Success int     `json:"success"`
	Error   int     `json:"error"`
	Ratio   float64 `json:"ratio"`
}

func newApp(getter *userx.Getter) *cli.App {
	app := cli.NewApp()
	app.Name = "coinflip"
	app.Usage = "flip a coin and maybe get some user info"
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "times",
			Aliases: []string{"n"},
			Value:   1,
			Usage:   "number of flips; more than one prints a tally",
			EnvVars: []string{"COINFLIP_TIMES"},
		},
		&cli.BoolFlag{
			Name:    "json",
			Usage:   "print each result as a [tag, payload] JSON array",
			EnvVars: []string{"COINFLIP_JSON"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"COINFLIP_LOG_LEVEL"},
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(c, getter)
	}
	return app
}

func run(c *cli.Context, getter *userx.Getter) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	times := c.Int("times")
	if times < 1 {
		return fmt.Errorf("times must be at least 1, got %d", times)
	}

	ctx := contextx.WithLogger(c.Context, logger)
	results := slicex.Generate(times, func(i int) basex.Result[userx.UserInfo] {
		return getter.MaybeGetUserInfo(contextx.WithLogAttrs(ctx, "run", i))
	})

	w := c.App.Writer
	asJSON := c.Bool("json")
	for _, r := range results {
		if err := printResult(w, r, asJSON); err != nil {
			return err
		}
	}

	if times == 1 {
		return nil
	}

	success := slicex.Count(results, basex.Result[userx.UserInfo].IsOk)
	s := summary{
		Total:   times,
		Success: success,
		Error:   times - success,
		Ratio:   float64(success) / float64(times),
	}
	logger.Debug("tally", "success", s.Success, "error", s.Error)
	if asJSON {
		data, err := sonic.MarshalString(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, data)
		return err
	}
	_, err := fmt.Fprintf(w, "success: %d/%d (%.4f)\n", s.Success, s.Total, s.Ratio)
	return err
}

func printResult(w io.Writer, r basex.Result[userx.UserInfo], asJSON bool) error {
	if asJSON {
		data, err := r.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	tag, payload := r.Unpack()
	_, err := fmt.Fprintf(w, "%s %v\n", tag, payload)
	return err
}
