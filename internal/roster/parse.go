// Package roster loads the ranked candidate list from its CSV source.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"recipick/internal/domain"
)

// ErrEmptySource is returned when the source holds no header line at all
var ErrEmptySource = errors.New("candidate source is empty")

const maxLineSize = 1 << 20

// Parse reads "identity,count" lines after a header line.
// Each line is parsed on its own, so a malformed line only drops itself.
// Lines with a missing field or a count that is not a non-negative integer are dropped.
// The result is sorted by descending weight.
func Parse(r io.Reader) ([]domain.Candidate, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		candidates []domain.Candidate
		sawHeader  bool
		dropped    int
	)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !sawHeader {
			sawHeader = true
			continue
		}

		candidate, ok := parseLine(line)
		if !ok {
			dropped++
			continue
		}
		candidates = append(candidates, candidate)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate source: %w", err)
	}

	if !sawHeader {
		return nil, ErrEmptySource
	}
	if dropped > 0 {
		log.Printf("roster: dropped %d malformed rows", dropped)
	}

	SortByWeight(candidates)
	return candidates, nil
}

// parseLine splits on the first two commas; columns after the count are ignored
func parseLine(line string) (domain.Candidate, bool) {
	name, rest, ok := strings.Cut(line, ",")
	if !ok {
		return domain.Candidate{}, false
	}
	count, _, _ := strings.Cut(rest, ",")

	name = unquote(strings.TrimSpace(name))
	count = unquote(strings.TrimSpace(count))
	if name == "" || count == "" {
		return domain.Candidate{}, false
	}

	weight, err := strconv.Atoi(count)
	if err != nil || weight < 0 {
		return domain.Candidate{}, false
	}

	return domain.Candidate{Identity: name, Weight: weight}, true
}

// unquote strips one pair of enclosing double quotes
func unquote(field string) string {
	if len(field) >= 2 && strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) {
		return strings.TrimSpace(strings.ReplaceAll(field[1:len(field)-1], `""`, `"`))
	}
	return field
}

// SortByWeight orders candidates by descending weight, keeping file order for ties
func SortByWeight(candidates []domain.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight > candidates[j].Weight
	})
}
