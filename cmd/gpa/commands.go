package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/gpa-calculator/internal/config"
	"github.com/sheikh-saqib/gpa-calculator/internal/evaluator"
	"github.com/sheikh-saqib/gpa-calculator/internal/ledger"
	"github.com/sheikh-saqib/gpa-calculator/internal/logging"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage"
)

// session is what every subcommand works against. Subject ids are
// sequential in restore order so they stay valid between invocations
// until the list changes.
type session struct {
	envFiles []string
	verbose  bool

	logger *zap.Logger
	store  storage.Store
	ledger *ledger.Ledger
}

func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "gpa",
		Short: "Weighted GPA calculator",
		Long: `gpa keeps a list of subjects (name, credit weight, grade value) in the
configured store and computes the credit-weighted GPA with its status band.

The store is selected with GPA_STORE (memory, file, sqlite, postgres);
memory keeps nothing between runs, so use file or sqlite from the CLI.`,
		SilenceUsage:      true,
		PersistentPreRunE: s.open,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
	}
	root.PersistentFlags().StringSliceVar(&s.envFiles, "env-file", nil, "env files to load (default .env)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		s.addCmd(),
		s.removeCmd(),
		s.listCmd(),
		s.computeCmd(),
		gradesCmd(),
	)
	return root
}

func (s *session) open(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(s.envFiles...)
	if err != nil {
		return err
	}

	level := "warn"
	if s.verbose {
		level = "debug"
	}
	s.logger, err = logging.New(level, true)
	if err != nil {
		return err
	}

	s.store, err = storage.Open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}

	s.ledger = ledger.NewLedger(s.store,
		ledger.WithLogger(s.logger),
		ledger.WithIDGenerator(ledger.NewSequence("s")))
	s.ledger.Restore(cmd.Context())
	return nil
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

func (s *session) addCmd() *cobra.Command {
	var (
		name   string
		credit int
		grade  float64
	)
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a subject",
		Example: `  gpa add --name "Kalkulus" --credit 3 --grade 3.7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := s.ledger.Add(cmd.Context(), name, credit, grade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %q added as %s\n", record.Name, record.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "subject name")
	cmd.Flags().IntVarP(&credit, "credit", "c", 0, "credit weight (1-8)")
	cmd.Flags().Float64VarP(&grade, "grade", "g", 0, "grade value (0.00-4.00)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("credit")
	cmd.MarkFlagRequired("grade")
	return cmd
}

func (s *session) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a subject by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := s.ledger.Remove(cmd.Context(), args[0])
			if errors.Is(err, ledger.ErrNotFound) {
				// stale id, nothing to do
				fmt.Fprintf(cmd.OutOrStdout(), "no subject with id %s\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ %q removed\n", removed.Name)
			return nil
		},
	}
}

func (s *session) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderSubjects(cmd.OutOrStdout(), s.ledger.List())
		},
	}
}

func (s *session) computeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute",
		Short: "Compute the weighted GPA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evaluator.Compute(s.ledger.List())
			if errors.Is(err, evaluator.ErrEmptyLedger) {
				return errors.New("add at least one subject first")
			}
			if err != nil {
				return err
			}
			renderResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func gradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show the grade scale and status bands",
		Args:  cobra.NoArgs,
		// reference tables need no store
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderReference(cmd.OutOrStdout())
		},
	}
}
