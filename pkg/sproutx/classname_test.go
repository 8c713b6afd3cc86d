package sproutx

import (
	"strings"
	"testing"
	"text/template"

	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassNameRegistry_ClassName(t *testing.T) {
	registry := NewClassNameRegistry()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "internal reference name",
			input:    "java/lang/Object",
			expected: "java.lang.Object",
		},
		{
			name:     "internal reference array",
			input:    "[[Ljava/lang/Object;",
			expected: "[[Ljava.lang.Object;",
		},
		{
			name:     "primitive array",
			input:    "[I",
			expected: "[I",
		},
		{
			name:    "invalid",
			input:   "[X",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := registry.ClassName(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestClassNameRegistry_ArrayDepthAndElementName(t *testing.T) {
	registry := NewClassNameRegistry()

	depth, err := registry.ArrayDepth("[[Ljava.lang.Object;")
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	element, err := registry.ElementName("[[I")
	require.NoError(t, err)
	assert.Equal(t, "int", element)

	element, err = registry.ElementName("[Ljava/lang/String;")
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String", element)
}

func TestClassNameRegistryIntegration(t *testing.T) {
	funcs := sprout.New(
		sprout.WithRegistries(
			sproutstrings.NewRegistry(),
			NewClassNameRegistry(),
		),
	).Build()

	for _, funcName := range []string{"className", "binaryName", "arrayDepth", "elementName"} {
		_, exists := funcs[funcName]
		assert.True(t, exists, "expected function %s to be registered", funcName)
	}

	tmpl, err := template.New("test").Funcs(funcs).Parse(`{{ className "[Ljava/lang/Object;" }} {{ arrayDepth "[[I" }} {{ binaryName "java/lang/Runnable" }}`)
	require.NoError(t, err)

	var result strings.Builder
	err = tmpl.Execute(&result, nil)
	require.NoError(t, err)

	assert.Equal(t, "[Ljava.lang.Object; 2 java.lang.Runnable", result.String())
}
