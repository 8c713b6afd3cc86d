package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sagikazarmark/probes/pkg/fsx"
	"github.com/sagikazarmark/probes/probe"
)

type classNameOptions struct {
	templateOptions

	file string
}

// classNameRow is the data a --template is executed with
type classNameRow struct {
	Index      int
	Input      string
	Kind       string
	Dims       int
	Name       string
	Descriptor probe.Descriptor
}

func NewClassNameCommand(cli *Cli) *cobra.Command {
	var opts classNameOptions

	cmd := &cobra.Command{
		Use:   "classname [descriptor...]",
		Short: "Print canonical class names",
		Long: `Print the canonical class name of each descriptor.

Without arguments the seven built-in probes are printed:
Object, int[], int[][], Object[], Object[][], Runnable and the runtime
type of a string.

Descriptors may be given as arguments or read from a file, one per line,
in dotted (java.lang.Object) or internal (java/lang/Object) form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("template") {
				opts.template = cli.Config().Template
			}

			return runClassName(cli, cmd.OutOrStdout(), args, &opts)
		},
	}

	addClassNameFlags(cmd.Flags(), &opts)

	return cmd
}

// addClassNameFlags adds the flags to the classname command
func addClassNameFlags(flags *pflag.FlagSet, opts *classNameOptions) {
	addTemplateFlags(flags, &opts.templateOptions)

	flags.StringVar(
		&opts.file,
		"file",
		"",
		`File to read descriptors from, one per line`,
	)
}

func runClassName(cli *Cli, w io.Writer, args []string, opts *classNameOptions) error {
	inputs := args

	if opts.file != "" {
		lines, err := fsx.ReadFileLines(os.DirFS(filepath.Dir(opts.file)), filepath.Base(opts.file))
		if err != nil {
			return fmt.Errorf("read descriptors: %w", err)
		}

		inputs = append(inputs, lines...)
	}

	var descriptors []probe.Descriptor
	if len(inputs) == 0 {
		descriptors = probe.DefaultDescriptors()
		inputs = lo.Map(descriptors, func(d probe.Descriptor, _ int) string {
			return d.ClassName()
		})
	} else {
		for _, input := range inputs {
			d, err := probe.ParseDescriptor(input)
			if err != nil {
				return err
			}

			descriptors = append(descriptors, d)
		}
	}

	cli.Logger().Debug("formatting class names", zap.Int("count", len(descriptors)))

	if opts.template == "" {
		return probe.PrintClassNames(w, descriptors)
	}

	tmpl, err := newTemplate("classname", opts.template)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	rows := lo.Map(descriptors, func(d probe.Descriptor, i int) classNameRow {
		return classNameRow{
			Index:      i,
			Input:      inputs[i],
			Kind:       d.Kind.String(),
			Dims:       d.Dims,
			Name:       d.ClassName(),
			Descriptor: d,
		}
	})

	return renderRows(w, tmpl, rows)
}

func renderRows[T any](w io.Writer, tmpl *template.Template, rows []T) error {
	for _, row := range rows {
		if err := tmpl.Execute(w, row); err != nil {
			return fmt.Errorf("render template: %w", err)
		}
	}

	return nil
}
