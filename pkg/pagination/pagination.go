// Package pagination computes page windows that never fail on bad input.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

type Page struct {
	Number     int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// New clamps requested into [1, TotalPages]. An empty result still has one page.
func New(requested, perPage, total int) Page {
	if perPage <= 0 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if requested < 1 {
		requested = 1
	}
	if requested > pages {
		requested = pages
	}
	return Page{Number: requested, PerPage: perPage, TotalCount: total, TotalPages: pages}
}

// ParseNumber reads a page query parameter; anything unparsable is page 1. Numbers
// beyond the int range saturate so New can clamp them to the last or first page.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil {
		return 1
	}
	return n
}

func (p Page) Offset() int { return (p.Number - 1) * p.PerPage }
func (p Page) Limit() int { return p.PerPage }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

func (p Page) HasPrevious() bool { return p.Number > 1 }

func (p Page) NextNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

func (p Page) PreviousNumber() int {
	if p.HasPrevious() {
		return p.Number - 1
	}
	return p.Number
}

// Numbers lists every page number, for rendering page links.
func (p Page) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
