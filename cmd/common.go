package cmd

import (
	"strings"
	"text/template"

	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"
	"github.com/spf13/pflag"

	"github.com/sagikazarmark/probes/pkg/sproutx"
)

// templateOptions contains options for commands that render their output through a template
type templateOptions struct {
	template string
}

// addTemplateFlags adds the template flags to a command
func addTemplateFlags(flags *pflag.FlagSet, opts *templateOptions) {
	flags.StringVar(
		&opts.template,
		"template",
		"",
		`Go template rendered once per result (defaults to the plain result)`,
	)
}

// newTemplate parses a line template with the probe template functions available.
// A trailing newline is added when missing so every result ends up on its own line.
func newTemplate(name string, text string) (*template.Template, error) {
	funcs := sprout.New(
		sprout.WithRegistries(
			sproutstrings.NewRegistry(),
			sproutx.NewClassNameRegistry(),
		),
	).Build()

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return template.New(name).Funcs(funcs).Parse(text)
}
