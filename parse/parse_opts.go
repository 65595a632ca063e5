package parse

import "github.com/maximizer/indents/format"

type parseOpts struct {
	mode  format.Mode
	trace bool
}

type ParseOption func(*parseOpts)

func ParseMode(m format.Mode) ParseOption {
	return func(o *parseOpts) { o.mode = m }
}
func ParseObject() ParseOption {
	return ParseMode(format.ObjectMode)
}
func ParseAssoc() ParseOption {
	return ParseMode(format.AssocMode)
}

// ParseTrace logs every builder transition to stderr. Setting
// INDENTS_DEBUG_BUILD has the same effect for all parses.
func ParseTrace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}

func makeOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{mode: format.ObjectMode}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
