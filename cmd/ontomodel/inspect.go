package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontomodel/vocabulary/ontouml"
)

func taxonomyCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "List element kinds and whether they pass the taxonomy gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			tax, err := cfg.NewTaxonomy()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Permitted shapes: %s\n\n", joinKinds(tax.Permitted()))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPARENT\tSHAPE\tALLOWED\tIRI\tFIELDS")
			for _, k := range tax.Kinds() {
				parent := string(k.Parent)
				if parent == "" {
					parent = "-"
				}
				shape := string(k.Shape)
				if shape == "" {
					shape = "-"
				}
				iri, ok := ontouml.ClassIRIs[string(k.Kind)]
				if !ok {
					iri = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n", k.Kind, parent, shape, k.Allowed, iri, strings.Join(k.Fields, ","))
			}
			return w.Flush()
		},
	}
}

func vocabularyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "List the OntoUML predicates with their data types and IRIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PREDICATE\tTYPE\tIRI\tDESCRIPTION")
			for _, p := range ontouml.Predicates() {
				meta := vocabulary.GetPredicateMetadata(p)
				if meta == nil {
					return fmt.Errorf("predicate %s is not registered", p)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p, meta.DataType, meta.StandardIRI, meta.Description)
			}
			return w.Flush()
		},
	}
}
