package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultPage = 1
	maxPageSize = 200
	maxLimit    = 100
)

// parsePagination reads page and page_size. A pageSize of 0 means the caller did not choose one.
func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("invalid page size value [%d]", ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

// parseLimit reads the limit parameter. A limit of 0 means the caller did not choose one.
func parseLimit(q url.Values) (int, error) {
	if !q.Has("limit") {
		return 0, nil
	}

	l, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if l < 1 || l > maxLimit {
		return 0, fmt.Errorf("limit [%d] outside range [1, %d]", l, maxLimit)
	}
	return int(l), nil
}

func parseBool(q url.Values, name string) (bool, error) {
	if !q.Has(name) {
		return false, nil
	}
	v, err := strconv.ParseBool(q.Get(name))
	if err != nil {
		return false, fmt.Errorf("unable to parse %s from query: %w", name, err)
	}
	return v, nil
}
