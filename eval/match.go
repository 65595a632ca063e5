package eval

import (
	"errors"
	"fmt"

	"github.com/maximizer/indents/debug"
	"github.com/maximizer/indents/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrExpr = errors.New("expression error")

// Result is a node an expression matched.
type Result struct {
	Index ir.Index
	Path  string
	Depth int
}

// Program is an expression compiled against one tree.
type Program struct {
	tree    *ir.Tree
	input   string
	program *vm.Program
}

func Compile(tree *ir.Tree, input string, asBool bool) (*Program, error) {
	opts := append(exprOpts(tree), expr.Env(Env{}))
	if asBool {
		opts = append(opts, expr.AsBool())
	}
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpr, err)
	}
	return &Program{tree: tree, input: input, program: program}, nil
}

// Eval runs p with the environment of the node at i.
func (p *Program) Eval(i ir.Index) (any, error) {
	res, err := vm.Run(p.program, NodeEnv(p.tree, i))
	if err != nil {
		return nil, fmt.Errorf("%w: at %s: %w", ErrExpr, p.tree.Path(i), err)
	}
	return res, nil
}

// Matches runs p, which must be compiled as a boolean expression, over
// every node in document order.
func (p *Program) Matches() ([]Result, error) {
	res := []Result{}
	err := p.tree.Walk(func(i ir.Index, depth int) error {
		v, err := p.Eval(i)
		if err != nil {
			return err
		}
		ok, _ := v.(bool)
		if debug.Match() {
			debug.Logf("match %q at %s: %t\n", p.input, p.tree.Path(i), ok)
		}
		if ok {
			res = append(res, Result{Index: i, Path: p.tree.Path(i), Depth: depth})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Match returns the nodes of tree for which input evaluates to true.
func Match(tree *ir.Tree, input string) ([]Result, error) {
	p, err := Compile(tree, input, true)
	if err != nil {
		return nil, err
	}
	return p.Matches()
}

// Eval evaluates input once with the environment of the root key.
func Eval(tree *ir.Tree, input string) (any, error) {
	kids := tree.Children(tree.Root())
	if len(kids) == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrExpr)
	}
	p, err := Compile(tree, input, false)
	if err != nil {
		return nil, err
	}
	return p.Eval(kids[0])
}
