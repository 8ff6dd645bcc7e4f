package repository

const defaultPageLimit = 50

// Page represents a simple limit/offset window for listing operations.
// I keep it intentionally small; advanced filtering belongs to higher layers.
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit and clamps a negative offset.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResult carries a slice of items and the total count matching the query.
// I return the total so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Paginate cuts a window out of items. Items are copied so callers can't alias store state.
func Paginate[T any](items []T, p Page) PageResult[T] {
	p = p.Normalize()
	res := PageResult[T]{Items: []T{}, Total: len(items)}
	if p.Offset >= len(items) {
		return res
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	res.Items = append(res.Items, items[p.Offset:end]...)
	return res
}
