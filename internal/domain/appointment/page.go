package appointment

import (
	"math"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/dental-scheduler/internal/httperr"
)

const (
	DefaultPage  = 0
	DefaultLimit = 5
	MaxLimit     = 100
)

// PageRequest is zero based: page 0 is the first page.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Offset() int {
	return p.Page * p.Limit
}

func NewPageRequest(page, limit int) (PageRequest, error) {
	if page < 0 || limit < 1 || limit > MaxLimit {
		return PageRequest{}, httperr.ErrBusiness("invalid_pagination")
	}
	// Offset must fit in an int
	if page > math.MaxInt/limit {
		return PageRequest{}, httperr.ErrBusiness("invalid_pagination")
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

// ParsePageRequest accepts the raw query strings; blanks fall back to the
// defaults.
func ParsePageRequest(page, limit string) (PageRequest, error) {
	p, l := DefaultPage, DefaultLimit

	if s := strings.TrimSpace(page); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return PageRequest{}, httperr.ErrBusiness("invalid_pagination")
		}
		p = v
	}

	if s := strings.TrimSpace(limit); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return PageRequest{}, httperr.ErrBusiness("invalid_pagination")
		}
		l = v
	}

	return NewPageRequest(p, l)
}
