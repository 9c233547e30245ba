package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/adapter/filestore"
	"github.com/jungguji/algo-rewind/internal/app"
	"github.com/jungguji/algo-rewind/internal/config"
	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/problem"
	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

// Operation names for decoding errors raised outside the jsonapi operations.
const (
	opLoad   = "load_problems"
	opImport = "import_problems"
)

// cli holds what every command needs once the root pre-run has finished.
type cli struct {
	file  string
	clock func() time.Time

	log   *slog.Logger
	store *filestore.Store
	api   *jsonapi.API
}

func newRootCmd(clock func() time.Time) *cobra.Command {
	c := &cli{clock: clock}

	root := &cobra.Command{
		Use:   "algo-rewind",
		Short: "Spaced repetition for solved coding problems",
		Long: `algo-rewind keeps a list of solved problems and schedules each one for
review with a fixed interval per difficulty level:
AGAIN 1 day, HARD 3 days, GOOD 7 days, EASY 30 days.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVarP(&c.file, "file", "f", "",
		"problem list file (default: store.path from config, ~/.algo-rewind/problems.json)")

	root.AddCommand(
		newAddCmd(c),
		newDueCmd(c),
		newReviewCmd(c),
		newSearchCmd(c),
		newListCmd(c),
		newDeleteCmd(c),
		newStatsCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newClearCmd(c),
	)

	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c.log = app.NewLogger(cfg.Log)

	path := c.file
	if path == "" {
		path = cfg.Store.Path
	}
	c.store = filestore.New(path)
	c.api = jsonapi.New(problem.NewService(c.log, problem.NewIDGenerator(c.clock), c.clock))

	c.log.Debug("using problem file", slog.String("path", path))
	return nil
}

func (c *cli) today() string {
	return domain.FormatDate(c.clock())
}

// raw returns the stored list as JSON text.
func (c *cli) raw() (string, error) {
	return c.store.Load()
}

func (c *cli) load() ([]domain.Problem, error) {
	raw, err := c.raw()
	if err != nil {
		return nil, err
	}
	problems, err := jsonapi.DecodeProblems(opLoad, []byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.store.Path(), err)
	}
	return problems, nil
}

func (c *cli) save(problems []domain.Problem) error {
	data, err := jsonapi.EncodeProblems(problems)
	if err != nil {
		return err
	}
	return c.store.Save(string(data))
}

func splitTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
