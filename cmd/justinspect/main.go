// Command justinspect shows where icons sit in an already migrated SVG.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kpango/glg"
	"github.com/spf13/cobra"

	"github.com/gucio321/iconport/pkg/importer"
	"github.com/gucio321/iconport/pkg/svgdoc"
	"github.com/gucio321/iconport/pkg/template"
)

func main() {
	var inputFile string

	cmd := &cobra.Command{
		Use:          "justinspect -i FILE",
		Short:        "Print the baseplates and import groups of a migrated icon",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// load file
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return err
			}

			// parse file
			doc, err := svgdoc.Parse(data)
			if err != nil {
				return err
			}

			return inspect(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		glg.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		glg.Fatal(err)
	}
}

func inspect(w io.Writer, doc *svgdoc.Document) error {
	baseplates, notes := template.FindBaseplates(doc)
	for _, n := range notes {
		glg.Warnf("%s", n)
	}

	fmt.Fprintln(w, "baseplates:")
	for _, b := range baseplates {
		fmt.Fprintf(w, "  %-12s x=%g y=%g %gx%g hidden=%v\n", b.ID, b.X, b.Y, b.Width, b.Height, svgdoc.Hidden(b.Element))
	}

	groups, err := importer.Groups(doc)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "imported:")
	for _, g := range groups {
		fmt.Fprintf(w, "  %-12s scale=%.4f translate=(%.4f,%.4f) elements=%d", g.BaseplateID, g.Transform.Scale, g.Transform.Translate.X, g.Transform.Translate.Y, g.Children)
		if g.Transform.Degraded {
			fmt.Fprint(w, " (unscaled)")
		}

		fmt.Fprintln(w)
	}

	for _, role := range []template.Role{template.RoleContext, template.RoleIconName} {
		if e := template.FindPlaceholder(doc, role); e != nil {
			fmt.Fprintf(w, "%s: %q\n", role, placeholderText(e))
		}
	}

	return nil
}

func placeholderText(e *svgdoc.Element) string {
	if t := e.SelectElement("tspan"); t != nil {
		return t.Text()
	}

	return e.Text()
}
