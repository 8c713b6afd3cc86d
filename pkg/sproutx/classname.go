package sproutx

import (
	"github.com/go-sprout/sprout"

	"github.com/sagikazarmark/probes/probe"
)

// ClassNameRegistry struct implements the [sprout.Registry] interface, embedding the Handler to access shared functionalities.
type ClassNameRegistry struct {
	handler sprout.Handler
}

// NewClassNameRegistry initializes and returns a new [sprout.Registry].
func NewClassNameRegistry() *ClassNameRegistry {
	return &ClassNameRegistry{}
}

// Implements [sprout.Registry].
func (r *ClassNameRegistry) UID() string {
	return "sagikazarmark/probes.classname"
}

// Implements [sprout.Registry].
func (r *ClassNameRegistry) LinkHandler(fh sprout.Handler) error {
	r.handler = fh

	return nil
}

// Implements [sprout.Registry].
func (r *ClassNameRegistry) RegisterFunctions(funcsMap sprout.FunctionMap) error {
	sprout.AddFunction(funcsMap, "className", r.ClassName)
	sprout.AddFunction(funcsMap, "binaryName", r.BinaryName)
	sprout.AddFunction(funcsMap, "arrayDepth", r.ArrayDepth)
	sprout.AddFunction(funcsMap, "elementName", r.ElementName)

	return nil
}

// ClassName normalizes a descriptor (dotted or internal form) to its canonical class name.
func (r *ClassNameRegistry) ClassName(descriptor string) (string, error) {
	d, err := probe.ParseDescriptor(descriptor)
	if err != nil {
		return "", err
	}

	return d.ClassName(), nil
}

func (r *ClassNameRegistry) BinaryName(internal string) string {
	return probe.BinaryName(internal)
}

// ArrayDepth returns the number of array dimensions of a descriptor.
func (r *ClassNameRegistry) ArrayDepth(descriptor string) (int, error) {
	d, err := probe.ParseDescriptor(descriptor)
	if err != nil {
		return 0, err
	}

	return d.Dims, nil
}

// ElementName returns the name of the innermost element type of a descriptor.
func (r *ClassNameRegistry) ElementName(descriptor string) (string, error) {
	d, err := probe.ParseDescriptor(descriptor)
	if err != nil {
		return "", err
	}

	d.Dims = 0

	return d.ClassName(), nil
}
