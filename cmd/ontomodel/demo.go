package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontomodel/config"
	"github.com/c360studio/ontomodel/model"
	"github.com/c360studio/ontomodel/vocabulary/ontouml"
)

func demoCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a small project and show how ownership edges behave",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDemo(cfg, logger, cmd.OutOrStdout())
		},
	}
}

func runDemo(cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	tax, err := cfg.NewTaxonomy()
	if err != nil {
		return err
	}

	graphOpts := []model.GraphOption{model.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		metrics, err := model.NewMetrics(reg, cfg.Metrics.Namespace)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		graphOpts = append(graphOpts, model.WithMetrics(metrics))
	}

	opts := []model.Option{
		model.WithTaxonomy(tax),
		model.WithGraph(model.NewGraph(graphOpts...)),
		model.WithIDPolicy(cfg.IDPolicy()),
	}

	library, err := model.NewProject(model.Fields{
		"id":                   "library",
		"names":                model.LangString{Text: "Library", Lang: "en"},
		"keywords":             []string{"books", "loans"},
		"representation_style": ontouml.StyleOntoUML,
	}, opts...)
	if err != nil {
		return err
	}
	archive, err := model.NewProject(model.Fields{"id": "archive", "names": "Archive"}, opts...)
	if err != nil {
		return err
	}

	root, err := library.CreatePackage(model.Fields{"id": "library-root", "names": "Library"})
	if err != nil {
		return err
	}
	if err := library.SetRootPackage(root); err != nil {
		return err
	}

	book, err := library.CreateClass(model.Fields{
		"id":            "book",
		"names":         "Book",
		"stereotype":    ontouml.StereotypeKind,
		"restricted_to": []ontouml.OntologicalNature{ontouml.NatureFunctionalComplex},
	})
	if err != nil {
		return err
	}
	loan, err := library.CreateClass(model.Fields{
		"id":            "loan",
		"names":         "Loan",
		"stereotype":    ontouml.StereotypeRelator,
		"restricted_to": []ontouml.OntologicalNature{ontouml.NatureRelator},
	})
	if err != nil {
		return err
	}

	// Adding twice is a no-op; the book now lives in both projects.
	for range 2 {
		if err := archive.AddElement(book); err != nil {
			return err
		}
	}
	printProject(out, library)
	printProject(out, archive)
	printMembership(out, book)

	if err := archive.AddElement(library); err != nil {
		fmt.Fprintf(out, "\nadding a project to a project: %v\n", err)
	}

	if err := library.RemoveElement(loan); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nafter removing loan from library:")
	printProject(out, library)
	printMembership(out, loan)

	if reg != nil {
		return printMetrics(out, reg)
	}
	return nil
}

func printProject(out io.Writer, p *model.Project) {
	ids := make([]string, 0, p.Len())
	for _, e := range p.Elements() {
		ids = append(ids, fmt.Sprintf("%s(%s)", e.ID(), e.Kind()))
	}
	fmt.Fprintf(out, "project %s [%s]: %s\n", p.ID(), p.Name(), strings.Join(ids, ", "))
}

func printMembership(out io.Writer, n model.Node) {
	ids := make([]string, 0)
	for _, c := range n.Membership() {
		ids = append(ids, c.ID())
	}
	fmt.Fprintf(out, "%s %s is in: [%s]\n", n.Kind(), n.ID(), strings.Join(ids, ", "))
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(out, "\nmetrics:")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}
			fmt.Fprintf(out, "  %s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}

func joinKinds(kinds []model.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
