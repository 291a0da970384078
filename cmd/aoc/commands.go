package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/aoc/internal/domain"
)

func (a *app) runCmd() *cobra.Command {
	var (
		example bool
		params  []string
	)
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every day with an input",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseParams(params)
			if err != nil {
				return err
			}
			return a.finish(a.run(cmd, args, example, overrides))
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "use the embedded example inputs and their parameters")
	cmd.Flags().StringArrayVar(&params, "param", nil, "puzzle parameter name=value (repeatable)")
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, example bool, overrides domain.Params) error {
	ctx := cmd.Context()
	svc := a.service(example)

	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		ls, err := svc.Available(ctx)
		if err != nil {
			return err
		}
		for _, l := range ls {
			if l.Input != nil {
				days = append(days, l.Day)
			}
		}
		if len(days) == 0 {
			return fmt.Errorf("no inputs found in %s", a.cfg.InputDir)
		}
	}

	a.logger.Info("run", zap.Ints("days", days), zap.Bool("example", example))
	for _, day := range days {
		params := domain.Params{}
		if example {
			if params, err = a.examples.Params(ctx, day); err != nil {
				return err
			}
		}
		params = params.Merge(a.cfg.ParamsFor(day)).Merge(overrides)

		res, err := svc.Run(ctx, day, params)
		if err != nil {
			return err
		}
		if err := a.printer.Result(res); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) listCmd() *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzles and whether an input file exists for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ls, err := a.service(example).Available(cmd.Context())
			if err == nil {
				err = a.printer.Puzzles(ls)
			}
			return a.finish(err)
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "list the embedded example inputs")
	return cmd
}

var errVerifyFailed = errors.New("example verification failed")

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every embedded example against its documented answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(a.verify(cmd))
		},
	}
}

func (a *app) verify(cmd *cobra.Command) error {
	checks, err := a.service(true).Verify(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.printer.Verification(checks); err != nil {
		return err
	}
	failed := 0
	for _, c := range checks {
		if !c.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks", errVerifyFailed, failed, len(checks))
	}
	return nil
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, s := range args {
		d, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(s), "day"))
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q", s)
		}
		days = append(days, d)
	}
	return days, nil
}

func parseParams(kvs []string) (domain.Params, error) {
	out := domain.Params{}
	for _, kv := range kvs {
		name, val, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q, want name=value", kv)
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("invalid --param %q: %w", kv, err)
		}
		out[name] = n
	}
	return out, nil
}
