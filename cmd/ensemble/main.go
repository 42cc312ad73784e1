// Package main provides the CLI entry point for ensemble.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/containerd/errdefs"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/ndisidore/ensemble/internal/console"
	"github.com/ndisidore/ensemble/internal/stats"
	"github.com/ndisidore/ensemble/internal/translate"
	"github.com/ndisidore/ensemble/pkg/catalog"
	"github.com/ndisidore/ensemble/pkg/parser"
	"github.com/ndisidore/ensemble/pkg/slogctx"
)

// errUsage indicates missing positional arguments.
var errUsage = errors.New("usage")

// app bundles dependencies so CLI action handlers become testable methods.
type app struct {
	parser           *parser.Parser
	parse            func(path string) (*catalog.Catalog, error)
	loadTranslations func(path string) (*translate.Table, error)
	stdout           io.Writer
	stderr           io.Writer
	isTTY            bool
	format           string // resolved log format (pretty, json, text)
}

func main() {
	p := parser.New()
	a := &app{
		parser:           p,
		parse:            p.ParseFile,
		loadTranslations: translate.LoadFile,
		stdout:           os.Stdout,
		stderr:           os.Stderr,
		isTTY:            term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("CI") == "",
	}

	if err := a.command().Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "ensemble",
		Usage: "inspect instrument-definition catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "log format (auto, pretty, json, text)",
				Value:   "auto",
				Sources: cli.EnvVars("ENSEMBLE_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("ENSEMBLE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "translations",
				Usage:   "KDL translation file applied to display names",
				Sources: cli.EnvVars("ENSEMBLE_TRANSLATIONS"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "language tag for translations (default: the file's language)",
				Sources: cli.EnvVars("ENSEMBLE_LANG"),
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "parse catalogs and report their contents",
				ArgsUsage: "<file>...",
				Flags:     []cli.Flag{parallelismFlag()},
				Action:    a.validateAction,
			},
			{
				Name:      "groups",
				Usage:     "list instrument groups and their templates",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "group", Usage: "only this group id"},
					&cli.StringFlag{Name: "genre", Usage: "only templates of this genre id"},
					&cli.StringFlag{Name: "family", Usage: "only templates of this family id"},
					&cli.BoolFlag{Name: "all", Usage: "include extended instruments"},
				},
				Action: a.groupsAction,
			},
			{
				Name:      "show",
				Usage:     "show one instrument template",
				ArgsUsage: "<file> <template-id>",
				Action:    a.showAction,
			},
			{
				Name:      "orders",
				Usage:     "list score orders",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "arrange", Usage: "arrange the catalog's templates by this order id"},
				},
				Action: a.ordersAction,
			},
			{
				Name:      "stats",
				Usage:     "print catalog statistics",
				ArgsUsage: "<file>...",
				Flags: []cli.Flag{
					parallelismFlag(),
					&cli.StringFlag{Name: "textfile", Usage: "also write prometheus gauges to this file"},
				},
				Action: a.statsAction,
			},
			{
				Name:      "export",
				Usage:     "serialize a catalog",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "encoding", Usage: "output encoding (json, yaml)", Value: encodingJSON},
				},
				Action: a.exportAction,
			},
		},
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		},
	}
}

func parallelismFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "parallelism",
		Aliases: []string{"j"},
		Usage:   "max catalogs parsed concurrently (0 = unlimited)",
		Value:   4,
	}
}

// before configures logging and translations shared by every command.
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	a.format = cmd.String("format")
	if a.format == "auto" {
		if a.isTTY {
			a.format = console.FormatPretty
		} else {
			a.format = console.FormatText
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
	}
	logger, err := console.NewLogger(a.stderr, a.format, level)
	if err != nil {
		return ctx, fmt.Errorf("initializing logger: %w", err)
	}
	slog.SetDefault(logger)
	ctx = slogctx.ContextWithLogger(ctx, logger)
	if a.parser != nil {
		a.parser.Logger = logger
	}

	if err := a.configureTranslations(ctx, cmd.String("translations"), cmd.String("lang")); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (a *app) configureTranslations(ctx context.Context, path, lang string) error {
	if path == "" {
		return nil
	}
	tag := language.Und
	if lang != "" {
		var err error
		if tag, err = language.Parse(lang); err != nil {
			return fmt.Errorf("invalid language %q: %w: %w", lang, errdefs.ErrInvalidArgument, err)
		}
	}
	tbl, err := a.loadTranslations(path)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}
	if a.parser != nil {
		a.parser.Translator = tbl.Translator(tag)
	}
	slogctx.FromContext(ctx).LogAttrs(ctx, slog.LevelDebug, "translations loaded",
		slog.String("file", path),
		slog.String("language", tbl.Language().String()),
		slog.Int("messages", tbl.Len()),
	)
	return nil
}

// parseAll parses paths concurrently, at most limit at a time, and returns
// the catalogs in argument order.
func (a *app) parseAll(ctx context.Context, paths []string, limit int) ([]*catalog.Catalog, error) {
	if limit < 0 {
		return nil, fmt.Errorf("invalid value %d for flag --parallelism: must be >= 0: %w", limit, errdefs.ErrInvalidArgument)
	}
	cats := make([]*catalog.Catalog, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := a.parse(path)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			fctx := slogctx.With(ctx, slog.String("file", path))
			slogctx.FromContext(fctx).LogAttrs(fctx, slog.LevelDebug, "catalog parsed",
				slog.Int("templates", cat.Templates.Len()),
				slog.String("digest", cat.Source.Digest.String()),
			)
			cats[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cats, nil
}

func (a *app) parseOne(cmd *cli.Command, name string) (*catalog.Catalog, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, fmt.Errorf("%w: ensemble %s <file>", errUsage, name)
	}
	cat, err := a.parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cat, nil
}

func (a *app) validateAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("%w: ensemble validate <file>...", errUsage)
	}
	cats, err := a.parseAll(ctx, paths, cmd.Int("parallelism"))
	if err != nil {
		return err
	}
	for i, cat := range cats {
		a.printCatalogSummary(paths[i], cat)
	}
	return nil
}

func (a *app) printCatalogSummary(path string, cat *catalog.Catalog) {
	_, _ = fmt.Fprintf(a.stdout, "Catalog '%s' is valid\n", path)
	_, _ = fmt.Fprintf(a.stdout, "  Digest: %s\n", cat.Source.Digest)
	_, _ = fmt.Fprintf(a.stdout, "  Groups: %d\n", cat.Groups.Len())
	for _, g := range cat.SortedGroups() {
		_, _ = fmt.Fprintf(a.stdout, "    - %s (%d templates)\n", g.ID, len(cat.GroupTemplates(g.ID)))
	}
	_, _ = fmt.Fprintf(a.stdout, "  Templates: %d\n", cat.Templates.Len())
	_, _ = fmt.Fprintf(a.stdout, "  Orders: %d\n", cat.Orders.Len())
}

func (a *app) groupsAction(_ context.Context, cmd *cli.Command) error {
	cat, err := a.parseOne(cmd, "groups")
	if err != nil {
		return err
	}
	f := catalog.TemplateFilter{
		GroupID:         cmd.String("group"),
		GenreID:         cmd.String("genre"),
		FamilyID:        cmd.String("family"),
		IncludeExtended: cmd.Bool("all"),
	}
	if f.GroupID != "" {
		if _, err := cat.Group(f.GroupID); err != nil {
			return err
		}
	}
	console.NewPrinter(a.stdout).Groups(cat, f)
	return nil
}

func (a *app) showAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("%w: ensemble show <file> <template-id>", errUsage)
	}
	cat, err := a.parseOne(cmd, "show")
	if err != nil {
		return err
	}
	tmpl, err := cat.Template(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	console.NewPrinter(a.stdout).Template(tmpl)
	return nil
}

func (a *app) ordersAction(_ context.Context, cmd *cli.Command) error {
	cat, err := a.parseOne(cmd, "orders")
	if err != nil {
		return err
	}
	pr := console.NewPrinter(a.stdout)
	id := cmd.String("arrange")
	if id == "" {
		pr.Orders(cat)
		return nil
	}
	o, err := cat.Order(id)
	if err != nil {
		return err
	}
	pr.Arrangement(o, cat.FilterTemplates(catalog.TemplateFilter{}))
	return nil
}

func (a *app) statsAction(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("%w: ensemble stats <file>...", errUsage)
	}
	cats, err := a.parseAll(ctx, paths, cmd.Int("parallelism"))
	if err != nil {
		return err
	}
	c := stats.NewCollector()
	for _, cat := range cats {
		c.Observe(cat)
	}
	r := c.Report()
	stats.PrintReport(a.stdout, r)

	if path := cmd.String("textfile"); path != "" {
		if err := stats.WriteTextfile(path, r); err != nil {
			return err
		}
		slogctx.FromContext(ctx).LogAttrs(ctx, slog.LevelInfo, "metrics written", slog.String("file", path))
	}
	return nil
}

func (a *app) exportAction(_ context.Context, cmd *cli.Command) error {
	cat, err := a.parseOne(cmd, "export")
	if err != nil {
		return err
	}
	return encodeCatalog(a.stdout, cmd.String("encoding"), newExportCatalog(cat))
}
