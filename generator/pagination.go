package generator

import "github.com/routedoc/routedoc/descriptor"

// PaginationStyle classifies how a paginator shapes its envelope.
type PaginationStyle int

const (
	// StylePageNumber pages by page number; the envelope carries a total
	// count and next/previous page URLs.
	StylePageNumber PaginationStyle = iota
	// StyleLimitOffset pages by offset and limit, with the same envelope
	// as StylePageNumber.
	StyleLimitOffset
	// StyleCursor pages by opaque cursor; the envelope carries only
	// next/previous URLs.
	StyleCursor
)

// Paginator declares a route's pagination strategy.
type Paginator interface {
	Style() PaginationStyle
}

// PageNumberPaginator is a page-number pagination strategy.
type PageNumberPaginator struct{}

// Style implements Paginator.
func (PageNumberPaginator) Style() PaginationStyle { return StylePageNumber }

// LimitOffsetPaginator is an offset-limit pagination strategy.
type LimitOffsetPaginator struct{}

// Style implements Paginator.
func (LimitOffsetPaginator) Style() PaginationStyle { return StyleLimitOffset }

// CursorPaginator is a cursor pagination strategy.
type CursorPaginator struct{}

// Style implements Paginator.
func (CursorPaginator) Style() PaginationStyle { return StyleCursor }

// ProxyPaginator aliases a concrete default strategy. The synthesizer
// resolves through the indirection once before classifying.
type ProxyPaginator struct {
	// Default is the concrete strategy the proxy stands in for.
	Default Paginator
}

// Style implements Paginator by delegating to the default strategy.
func (p ProxyPaginator) Style() PaginationStyle {
	if p.Default == nil {
		return StylePageNumber
	}
	return p.Default.Style()
}

// wrapForPagination produces a synthetic list envelope descriptor around the
// child descriptor. Every envelope has a "results" field holding a list of
// child items; page-number and offset-limit strategies add count/next/previous,
// cursor strategies add only next/previous, and a nil paginator produces the
// bare results-only wrapper.
func wrapForPagination(child *descriptor.Descriptor, paginator Paginator) *descriptor.Descriptor {
	wrapped := &descriptor.Descriptor{
		Name: child.Name + "List",
		Fields: []descriptor.Field{
			{Name: "results", Kind: descriptor.KindList, Elem: &descriptor.Field{
				Name:   "results",
				Kind:   descriptor.KindNested,
				Nested: child,
			}},
		},
	}
	if paginator == nil {
		return wrapped
	}

	if proxy, ok := paginator.(ProxyPaginator); ok {
		paginator = proxy.Default
		if paginator == nil {
			return wrapped
		}
	}

	switch paginator.Style() {
	case StylePageNumber, StyleLimitOffset:
		wrapped.Fields = append(wrapped.Fields,
			descriptor.Field{Name: "count", Kind: descriptor.KindInteger},
			descriptor.Field{Name: "next", Kind: descriptor.KindURL},
			descriptor.Field{Name: "previous", Kind: descriptor.KindURL},
		)
	case StyleCursor:
		wrapped.Fields = append(wrapped.Fields,
			descriptor.Field{Name: "next", Kind: descriptor.KindURL},
			descriptor.Field{Name: "previous", Kind: descriptor.KindURL},
		)
	}
	return wrapped
}
