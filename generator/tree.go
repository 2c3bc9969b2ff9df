package generator

import (
	"strings"

	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
)

// commonPathPrefix determines the shared leading path segments of all
// candidate paths. Templated segments never participate, and the last shared
// segment is kept in the tree so sibling endpoints stay grouped under it.
func commonPathPrefix(paths []string) string {
	var common []string
	for i, path := range paths {
		segments := leadingNamedSegments(path)
		if i == 0 {
			common = segments
			continue
		}
		if len(segments) < len(common) {
			common = common[:len(segments)]
		}
		for j := range common {
			if common[j] != segments[j] {
				common = common[:j]
				break
			}
		}
	}
	if len(common) == 0 {
		return ""
	}
	// Keep the last shared segment as a tree node.
	common = common[:len(common)-1]
	if len(common) == 0 {
		return ""
	}
	return "/" + strings.Join(common, "/")
}

// leadingNamedSegments returns the path's leading concrete segments, stopping
// at the first templated one.
func leadingNamedSegments(path string) []string {
	var out []string
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" || strings.Contains(segment, "{") {
			break
		}
		out = append(out, segment)
	}
	return out
}

// pathKeys splits a prefix-stripped subpath into tree keys: the concrete
// segments in order, with templated segments dropped.
func pathKeys(subpath string) []string {
	var keys []string
	for _, segment := range strings.Split(strings.Trim(subpath, "/"), "/") {
		if segment == "" || strings.Contains(segment, "{") {
			continue
		}
		keys = append(keys, segment)
	}
	return keys
}

// insertLink places the link into the tree at the node addressed by keys,
// stored under the action key at the leaf. Two links landing on the same
// (keys, action) slot collide; the second insertion fails and the caller
// skips that link.
func insertLink(root *document.Node, keys []string, action string, link *document.Link) error {
	node := root
	for _, key := range keys {
		child, ok := node.Children[key]
		if !ok {
			child = document.NewNode()
			node.Children[key] = child
		}
		node = child
	}
	if _, exists := node.Links[action]; exists {
		return &docerrors.LinkError{
			Path:    link.URL,
			Message: "insertion collision at key " + strings.Join(append(keys, action), "/"),
		}
	}
	node.Links[action] = link
	return nil
}
