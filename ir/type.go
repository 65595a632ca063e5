package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Number": NumberType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

type Kind int

const (
	LeafKind Kind = iota
	BranchKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "Leaf"
	case BranchKind:
		return "Branch"
	default:
		return "<unknown kind>"
	}
}
