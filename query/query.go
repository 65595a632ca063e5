// Package query runs jq programs over the mapping view of a tree.
package query

import (
	"errors"
	"fmt"

	"github.com/maximizer/indents/ir"

	"github.com/itchyny/gojq"
)

var ErrQuery = errors.New("query error")

type Query struct {
	input string
	code  *gojq.Code
}

func Compile(input string) (*Query, error) {
	parsed, err := gojq.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid query %q: %w", ErrQuery, input, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid query %q: %w", ErrQuery, input, err)
	}
	return &Query{input: input, code: code}, nil
}

func (q *Query) String() string { return q.input }

// Run evaluates q against the mapping view of tree and collects every
// result.
func (q *Query) Run(tree *ir.Tree) ([]any, error) {
	iter := q.code.Run(normalize(tree.AsMap()))
	res := []any{}
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("%w: %w", ErrQuery, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// Run compiles input and runs it against tree.
func Run(tree *ir.Tree, input string) ([]any, error) {
	q, err := Compile(input)
	if err != nil {
		return nil, err
	}
	return q.Run(tree)
}

// normalize converts views to the value types gojq accepts.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalize(e)
		}
		return x
	case int64:
		return int(x)
	default:
		return v
	}
}
