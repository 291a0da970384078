package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/parse"
	"svw.info/aoc/internal/ports"
)

// Service runs puzzles against their inputs. Metrics and Logger are optional.
type Service struct {
	Puzzles  ports.Catalog
	Inputs   ports.InputSource
	Examples ports.ExampleSource
	Metrics  ports.Recorder
	Logger   *zap.Logger
}

func NewService(c ports.Catalog, in ports.InputSource, ex ports.ExampleSource, m ports.Recorder, log *zap.Logger) *Service {
	return &Service{Puzzles: c, Inputs: in, Examples: ex, Metrics: m, Logger: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ErrUnknownDay is returned for days with no registered puzzle.
var ErrUnknownDay = errors.New("no puzzle registered for day")

func (u *Service) log() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}

func (u *Service) lookup(day int) (ports.Puzzle, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	p, ok := u.Puzzles.Lookup(day)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return p, nil
}

// Run loads the input of day and solves both parts in order.
func (u *Service) Run(ctx context.Context, day int, params domain.Params) (domain.Result, error) {
	if u.Inputs == nil {
		return domain.Result{}, errNotConfigured
	}
	p, err := u.lookup(day)
	if err != nil {
		return domain.Result{}, err
	}
	text, err := u.Inputs.Load(ctx, day)
	if err != nil {
		return domain.Result{}, err
	}
	return u.solve(ctx, p, text, params)
}

// RunText solves both parts of day on the given input text.
func (u *Service) RunText(ctx context.Context, day int, text string, params domain.Params) (domain.Result, error) {
	p, err := u.lookup(day)
	if err != nil {
		return domain.Result{}, err
	}
	return u.solve(ctx, p, text, params)
}

func (u *Service) solve(ctx context.Context, p ports.Puzzle, text string, params domain.Params) (domain.Result, error) {
	res := domain.Result{Day: p.Day(), Title: p.Title()}
	lines := parse.Lines(text)
	for _, part := range domain.Parts {
		a, st, err := u.part(ctx, p, part, lines, params)
		res.Stats[part-1] = st
		if err != nil {
			return res, err
		}
		res.Answers[part-1] = a
	}
	return res, nil
}

// part solves one part on its own copy of the input.
func (u *Service) part(ctx context.Context, p ports.Puzzle, part domain.Part, lines []string, params domain.Params) (domain.Answer, domain.Stats, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.Stats{}, err
	}
	in := domain.Input{Lines: slices.Clone(lines), Params: domain.Params{}.Merge(params)}
	solve := p.Part1
	if part == domain.Part2 {
		solve = p.Part2
	}

	start := time.Now()
	a, err := solve(in)
	st := domain.Stats{Lines: len(lines), Duration: time.Since(start)}
	if u.Metrics != nil {
		u.Metrics.Observe(p.Day(), part, st.Duration, err)
	}

	fields := []zap.Field{
		zap.Int("day", p.Day()),
		zap.Stringer("part", part),
		zap.Int("lines", st.Lines),
		zap.Duration("dur", st.Duration),
	}
	if err != nil {
		u.log().Error("solve failed", append(fields, zap.Error(err))...)
		return "", st, fmt.Errorf("day %d part %s: %w", p.Day(), part, err)
	}
	u.log().Debug("solved", fields...)
	return a, st, nil
}

// Verify runs every documented example part and compares it with the
// recorded answer. Solve failures are reported in the checks; only a broken
// example source fails the call.
func (u *Service) Verify(ctx context.Context) ([]domain.Check, error) {
	if u.Examples == nil {
		return nil, errNotConfigured
	}
	exps, err := u.Examples.Expectations(ctx)
	if err != nil {
		return nil, err
	}
	var checks []domain.Check
	for _, x := range exps {
		text, err := u.Examples.Open(ctx, x.Name())
		if err != nil {
			return nil, err
		}
		for _, part := range domain.Parts {
			if _, ok := x.Want(part); !ok {
				continue
			}
			c := domain.Check{Expectation: x, Part: part}
			p, err := u.lookup(x.Day)
			if err == nil {
				c.Got, _, err = u.part(ctx, p, part, parse.Lines(text), x.Params)
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return checks, err
			}
			c.Err = err
			if !c.OK() {
				u.log().Warn("example mismatch", zap.Int("day", x.Day), zap.String("file", x.Name()), zap.Stringer("part", part))
			}
			checks = append(checks, c)
		}
	}
	return checks, nil
}

// Available lists every registered puzzle with the input found for it.
func (u *Service) Available(ctx context.Context) ([]domain.Listing, error) {
	if u.Puzzles == nil || u.Inputs == nil {
		return nil, errNotConfigured
	}
	metas, err := u.Inputs.List(ctx)
	if err != nil {
		return nil, err
	}
	byDay := make(map[int]domain.InputMeta, len(metas))
	for _, m := range metas {
		byDay[m.Day] = m
	}
	var out []domain.Listing
	for _, p := range u.Puzzles.All() {
		l := domain.Listing{Day: p.Day(), Title: p.Title()}
		if m, ok := byDay[p.Day()]; ok {
			l.Input = &m
		}
		out = append(out, l)
	}
	return out, nil
}
