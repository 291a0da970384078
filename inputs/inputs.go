// Package inputs bundles the puzzle examples and their documented answers.
package inputs

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/ports"
)

//go:embed examples/*.txt answers.yaml
var assets embed.FS

var validate = validator.New()

var dayFile = regexp.MustCompile(`^day(\d{2})\.txt$`)

// Examples serves example inputs from a file system laid out as
// examples/*.txt plus answers.yaml.
type Examples struct{ fsys fs.FS }

// NewExamples serves the embedded examples.
func NewExamples() *Examples { return &Examples{fsys: assets} }

// FromFS serves examples from fsys.
func FromFS(fsys fs.FS) *Examples { return &Examples{fsys: fsys} }

func (e *Examples) Load(ctx context.Context, day int) (string, error) {
	return e.Open(ctx, domain.InputFile(day))
}

// Open returns the example file with the given base name.
func (e *Examples) Open(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := fs.ReadFile(e.fsys, path.Join("examples", name))
	if err != nil {
		return "", fmt.Errorf("example %s: %w", name, err)
	}
	return string(b), nil
}

// List reports the canonical dayNN.txt examples. Extra variants such as
// day09_larger.txt are reachable through Open only.
func (e *Examples) List(ctx context.Context) ([]domain.InputMeta, error) {
	ents, err := fs.ReadDir(e.fsys, "examples")
	if err != nil {
		return nil, err
	}
	var out []domain.InputMeta
	for _, ent := range ents {
		m := dayFile.FindStringSubmatch(ent.Name())
		if ent.IsDir() || m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		info, err := ent.Info()
		if err != nil {
			return nil, err
		}
		out = append(out, domain.InputMeta{Day: day, Path: path.Join("examples", ent.Name()), Size: info.Size()})
	}
	return out, nil
}

// Expectations decodes and validates answers.yaml.
func (e *Examples) Expectations(ctx context.Context) ([]domain.Expectation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(e.fsys, "answers.yaml")
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var exps []domain.Expectation
	if err := dec.Decode(&exps); err != nil {
		return nil, fmt.Errorf("answers.yaml: %w", err)
	}
	for i, x := range exps {
		if err := validate.Struct(x); err != nil {
			return nil, fmt.Errorf("answers.yaml entry %d: %w", i+1, err)
		}
	}
	return exps, nil
}

// Params returns the parameters documented for the canonical example of day.
func (e *Examples) Params(ctx context.Context, day int) (domain.Params, error) {
	exps, err := e.Expectations(ctx)
	if err != nil {
		return nil, err
	}
	for _, x := range exps {
		if x.Day == day && x.Name() == domain.InputFile(day) {
			return x.Params, nil
		}
	}
	return nil, nil
}

var _ ports.ExampleSource = (*Examples)(nil)
