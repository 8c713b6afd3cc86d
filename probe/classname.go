package probe

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidDescriptor is returned when a class name cannot be parsed.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Kind tells which naming rule applies to a [Descriptor].
type Kind int

const (
	KindPrimitive Kind = iota
	KindReference
	KindInterface
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindReference:
		return "reference"
	case KindInterface:
		return "interface"
	case KindInstance:
		return "instance"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Primitive is a primitive element type.
type Primitive struct {
	Keyword string
	Code    byte
}

var (
	Boolean = Primitive{Keyword: "boolean", Code: 'Z'}
	Byte    = Primitive{Keyword: "byte", Code: 'B'}
	Char    = Primitive{Keyword: "char", Code: 'C'}
	Short   = Primitive{Keyword: "short", Code: 'S'}
	Int     = Primitive{Keyword: "int", Code: 'I'}
	Long    = Primitive{Keyword: "long", Code: 'J'}
	Float   = Primitive{Keyword: "float", Code: 'F'}
	Double  = Primitive{Keyword: "double", Code: 'D'}
)

var primitives = []Primitive{Boolean, Byte, Char, Short, Int, Long, Float, Double}

func primitiveByCode(code byte) (Primitive, bool) {
	for _, p := range primitives {
		if p.Code == code {
			return p, true
		}
	}

	return Primitive{}, false
}

func primitiveByKeyword(keyword string) (Primitive, bool) {
	for _, p := range primitives {
		if p.Keyword == keyword {
			return p, true
		}
	}

	return Primitive{}, false
}

// Descriptor describes the shape of a type: its kind, element type and array depth.
type Descriptor struct {
	Kind Kind

	// Primitive is set when Kind is KindPrimitive.
	Primitive Primitive

	// Name is the qualified name of a reference, interface or instance type.
	Name string

	// Dims is the array depth. Zero means the type itself.
	Dims int
}

// Scalar describes a named reference type.
func Scalar(name string) Descriptor {
	return Descriptor{Kind: KindReference, Name: name}
}

// PrimitiveArray describes a dims-dimensional array of p.
func PrimitiveArray(p Primitive, dims int) Descriptor {
	return Descriptor{Kind: KindPrimitive, Primitive: p, Dims: dims}
}

// ReferenceArray describes a dims-dimensional array of the named reference type.
func ReferenceArray(name string, dims int) Descriptor {
	return Descriptor{Kind: KindReference, Name: name, Dims: dims}
}

// Interface describes a behavioral contract type.
func Interface(name string) Descriptor {
	return Descriptor{Kind: KindInterface, Name: name}
}

// InstanceOf describes the runtime type of a concrete instance.
func InstanceOf(name string) Descriptor {
	return Descriptor{Kind: KindInstance, Name: name}
}

// ClassName encodes the descriptor as a canonical class name.
func (d Descriptor) ClassName() string {
	if d.Dims <= 0 {
		if d.Kind == KindPrimitive {
			return d.Primitive.Keyword
		}

		return d.Name
	}

	var b strings.Builder

	b.WriteString(strings.Repeat("[", d.Dims))

	if d.Kind == KindPrimitive {
		b.WriteByte(d.Primitive.Code)

		return b.String()
	}

	b.WriteByte('L')
	b.WriteString(d.Name)
	b.WriteByte(';')

	return b.String()
}

func (d Descriptor) String() string {
	return d.ClassName()
}

// BinaryName converts an internal slash-separated name (java/lang/Object) to its dotted form.
func BinaryName(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// ParseDescriptor parses a class name produced by [Descriptor.ClassName].
// Slash-separated internal names are accepted and normalized.
//
// A bare qualified name parses as a reference type: whether it names an interface
// cannot be told from the name alone.
func ParseDescriptor(s string) (Descriptor, error) {
	if s == "" {
		return Descriptor{}, fmt.Errorf("%w: empty", ErrInvalidDescriptor)
	}

	dims := len(s) - len(strings.TrimLeft(s, "["))
	rest := s[dims:]

	if dims == 0 {
		if p, ok := primitiveByKeyword(s); ok {
			return Descriptor{Kind: KindPrimitive, Primitive: p}, nil
		}

		if strings.ContainsAny(s, "[;") {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
		}

		return Scalar(BinaryName(s)), nil
	}

	if len(rest) == 1 {
		p, ok := primitiveByCode(rest[0])
		if !ok {
			return Descriptor{}, fmt.Errorf("%w: unknown primitive code %q in %q", ErrInvalidDescriptor, rest, s)
		}

		return PrimitiveArray(p, dims), nil
	}

	if !strings.HasPrefix(rest, "L") || !strings.HasSuffix(rest, ";") || len(rest) < 3 {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
	}

	name := rest[1 : len(rest)-1]
	if strings.ContainsAny(name, "[;") {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
	}

	return ReferenceArray(BinaryName(name), dims), nil
}

const (
	objectName   = "java.lang.Object"
	runnableName = "java.lang.Runnable"
	stringName   = "java.lang.String"
)

// DefaultDescriptors returns the seven descriptors the class-name demo prints.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		Scalar(objectName),
		PrimitiveArray(Int, 1),
		PrimitiveArray(Int, 2),
		ReferenceArray(objectName, 1),
		ReferenceArray(objectName, 2),
		Interface(runnableName),
		InstanceOf(stringName),
	}
}

// PrintClassNames prints the class name of every descriptor, one per line.
func PrintClassNames(w io.Writer, descriptors []Descriptor) error {
	for _, d := range descriptors {
		if _, err := fmt.Fprintln(w, d.ClassName()); err != nil {
			return fmt.Errorf("print class name of %s: %w", d.Name, err)
		}
	}

	return nil
}
