package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	IndentsFormat Format = iota
	JSONFormat
	YAMLFormat
)

var (
	ErrBadFormat = errors.New("bad format")
	ErrBadMode   = errors.New("bad mode")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"i":       IndentsFormat,
		"indents": IndentsFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case IndentsFormat:
		return []byte("indents"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Mode selects the presentation of a parsed tree. The numbering matches the
// historical TO_OBJECT / TO_ASSOC constants.
type Mode int

const (
	ObjectMode Mode = iota
	AssocMode
)

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"o":      ObjectMode,
		"object": ObjectMode,
		"a":      AssocMode,
		"assoc":  AssocMode,
		"map":    AssocMode,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	switch m {
	case ObjectMode:
		return "object"
	case AssocMode:
		return "assoc"
	default:
		return fmt.Sprintf("<err: %d is not a mode>", int(m))
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
