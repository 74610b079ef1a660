package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"skinlab/internal/app/ds"
	"skinlab/internal/app/repository"
)

// advisory печатает справочник рекомендаций: все записи, одну по коду или результаты поиска.
//
//	advisory            все симптомы
//	advisory rashes     одна запись
//	advisory -q zinc    поиск
func newRootCmd(repo *repository.Repository) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:           "advisory [symptom]",
		Short:         "Print deficiency advisories for visible skin symptoms",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			symptoms, err := selectSymptoms(repo, args, query)
			if err != nil {
				return err
			}
			return printAdvisories(cmd.OutOrStdout(), repo, symptoms)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search symptoms by text")
	return cmd
}

func selectSymptoms(repo *repository.Repository, args []string, query string) ([]ds.Symptom, error) {
	switch {
	case len(args) > 0:
		code, err := ds.ParseSymptomCode(args[0])
		if err != nil || code.IsEmpty() {
			return nil, fmt.Errorf("%w: %q", ds.ErrUnknownSymptom, args[0])
		}
		return []ds.Symptom{{Code: code, Label: code.Label()}}, nil
	case query != "":
		found := repo.SearchSymptoms(query)
		if len(found) == 0 {
			return nil, fmt.Errorf("nothing found for %q", query)
		}
		return found, nil
	default:
		return repo.ListSymptoms(), nil
	}
}

func printAdvisories(w io.Writer, repo *repository.Repository, symptoms []ds.Symptom) error {
	for _, s := range symptoms {
		a, err := repo.GetAdvisory(s.Code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%s)\n  %s\n  %s\n  Foods: %s\n\n", s.Label, s.Code, a.Name, a.Description, strings.Join(a.Foods, ", "))
	}
	return nil
}

func main() {
	if err := newRootCmd(repository.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
