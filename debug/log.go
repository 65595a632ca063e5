package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maximizer/indents/ir"
)

// Logf writes to stderr, rendering trees, views and slices of any as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, *ir.Object:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Tree:
			d, err := json.MarshalIndent(x.AsObject(), "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Tree] %v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
