package eval

import (
	"os"

	"github.com/maximizer/indents/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(tree *ir.Tree) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := tree.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == ir.NoIndex {
				return nil, nil
			}
			return tree.ValueAt(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			iRes, err := tree.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(iRes))
			for i, item := range iRes {
				res[i] = tree.ValueAt(item)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
