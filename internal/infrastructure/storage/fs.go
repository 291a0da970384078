package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"svw.info/aoc/internal/domain"
)

// FS reads puzzle inputs from a directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) Dir() string { return s.dir }

// candidates lists the accepted names for day in preference order.
func (s *FS) candidates(day int) []string {
	return []string{
		filepath.Join(s.dir, domain.InputFile(day)),
		filepath.Join(s.dir, fmt.Sprintf("day%d.txt", day)), // legacy unpadded
		filepath.Join(s.dir, fmt.Sprintf("%d.txt", day)),    // legacy bare number
	}
}

func (s *FS) Load(ctx context.Context, day int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, p := range s.candidates(day) {
		b, err := os.ReadFile(p)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("no input for day %d in %s: %w", day, s.dir, os.ErrNotExist)
}

var inputName = regexp.MustCompile(`^(?:day)?(\d{1,2})\.txt$`)

// lastDay is the final puzzle day of an event.
const lastDay = 25

// List reports one entry per day found in the directory. When several names
// exist for a day the preferred one wins. A missing directory lists nothing.
func (s *FS) List(ctx context.Context) ([]domain.InputMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	seen := map[int]bool{}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		if m := inputName.FindStringSubmatch(e.Name()); m != nil {
			if day, _ := strconv.Atoi(m[1]); day >= 1 && day <= lastDay {
				seen[day] = true
			}
		}
	}
	var out []domain.InputMeta
	for day := range seen {
		for _, p := range s.candidates(day) {
			info, err := os.Stat(p)
			if err != nil {
				continue
			}
			out = append(out, domain.InputMeta{Day: day, Path: p, Size: info.Size()})
			break
		}
	}
	slices.SortFunc(out, func(a, b domain.InputMeta) int { return a.Day - b.Day })
	return out, nil
}
