package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theflywheel/chaintable"
	"github.com/theflywheel/chaintable/internal/roster"
)

const (
	slotsKey = "slots"
	hashKey  = "hash"
)

type rosterOptions struct {
	file       string
	configFile string
	remove     []string
}

func newRosterCmd() *cobra.Command {
	opts := &rosterOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Load a student roster into a table and print it",
		Long: `Load a YAML roster of student grades into a chained hash table, remove
the students given with --remove and print the resulting table.

Table settings are read from flags, then CHAINTABLE_* environment variables,
then the --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execRoster(cmd, v, opts)
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Roster file (YAML)")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Table config file (YAML)")
	cmd.Flags().Int(slotsKey, chaintable.DefaultSlots, "Desired number of slots, rounded up to a power of two")
	cmd.Flags().String(hashKey, chaintable.DefaultHash.String(), "Hash for names [xxhash|xxh3|maphash]")
	cmd.Flags().StringSliceVarP(&opts.remove, "remove", "r", nil, "Students to remove after loading")
	_ = cmd.MarkFlagRequired("file")

	_ = v.BindPFlag(slotsKey, cmd.Flags().Lookup(slotsKey))
	_ = v.BindPFlag(hashKey, cmd.Flags().Lookup(hashKey))
	v.SetEnvPrefix("chaintable")
	v.AutomaticEnv()

	return cmd
}

func loadTableOptions(v *viper.Viper, configFile string) ([]chaintable.Option, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", configFile)
		}
	}

	alg, err := chaintable.ParseHashAlgorithm(strings.TrimSpace(v.GetString(hashKey)))
	if err != nil {
		return nil, err
	}

	return []chaintable.Option{
		chaintable.WithSlots(v.GetInt(slotsKey)),
		chaintable.WithHash(alg),
	}, nil
}

func execRoster(cmd *cobra.Command, v *viper.Viper, opts *rosterOptions) error {
	tableOpts, err := loadTableOptions(v, opts.configFile)
	if err != nil {
		return err
	}

	marks, err := chaintable.New[string, int](tableOpts...)
	if err != nil {
		return err
	}

	r, err := roster.Load(opts.file)
	if err != nil {
		return err
	}

	slog.Info(
		"Loaded roster",
		slog.String("file", opts.file),
		slog.Int("students", len(r.Students)),
		slog.Int("slots", marks.Capacity()),
	)

	roster.Apply(marks, r)
	if dropped := roster.Drop(marks, opts.remove...); dropped != len(opts.remove) {
		slog.Warn(
			"Some students to remove were not in the roster",
			slog.Int("requested", len(opts.remove)),
			slog.Int("removed", dropped),
		)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "size: %d\n", marks.Size())
	_, _ = fmt.Fprintf(out, "capacity: %d\n", marks.Capacity())
	_, _ = fmt.Fprint(out, marks.String())
	return nil
}
