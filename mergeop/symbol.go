package mergeop

import (
	"fmt"
	"sort"
)

type Symbol interface {
	String() string
	Instance(patch []byte) (Op, error)
}

type patchName string

func (s patchName) String() string {
	return string(s)
}

var symbols = map[string]Symbol{}

func register(s Symbol) Symbol {
	symbols[s.String()] = s
	return s
}

func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w: no operation %q (have %v)", ErrPatch, name, Names())
	}
	return s, nil
}

func Names() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
