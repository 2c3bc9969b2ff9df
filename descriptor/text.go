package descriptor

import "golang.org/x/text/message"

// Text is help text that may be resolved lazily. Localized help text stays
// unresolved until a document is actually generated, matching the lifecycle
// of descriptors declared at startup before locale catalogs are loaded.
type Text interface {
	// Resolve produces the concrete string.
	Resolve() string
}

// plainText is an eagerly-known string.
type plainText string

func (t plainText) Resolve() string { return string(t) }

// Plain wraps a concrete string as Text.
func Plain(s string) Text {
	return plainText(s)
}

// lazyText defers resolution to a function.
type lazyText func() string

func (t lazyText) Resolve() string { return t() }

// Lazy wraps a function as Text. The function is invoked on every Resolve
// call; implementations that are expensive should memoize internally.
func Lazy(fn func() string) Text {
	return lazyText(fn)
}

// Localized returns Text that formats key through a golang.org/x/text
// message printer when resolved. The printer's catalog supplies the
// translation; an untranslated key falls back to the key text itself.
func Localized(p *message.Printer, key message.Reference, args ...any) Text {
	return lazyText(func() string {
		return p.Sprintf(key, args...)
	})
}
