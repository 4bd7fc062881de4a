package main

import (
	"fmt"
	"os"

	dbactions "github.com/dtnitsch/wikilens/internal/db"
	"github.com/dtnitsch/wikilens/internal/serve"
	"github.com/dtnitsch/wikilens/internal/submit"
	"github.com/dtnitsch/wikilens/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wikilens",
		Usage: "show a wiki page and rank its internal links by relevance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "db", Usage: "SQLite database path (default: next to the binary)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging and gin debug mode"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the backend API (/server/process_form, /server/get_relevance_ranked)",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port (default 8000)"},
					&cli.StringFlag{Name: "cache-dir", Usage: "directory for raw page cache (disabled when empty)"},
					&cli.Float64Flag{Name: "rate-limit", Usage: "max requests per second to the wiki"},
					&cli.StringFlag{Name: "model", Usage: "Gemini model used for ranking"},
				},
			},
			{
				Name:   "ui",
				Usage:  "serve the form page",
				Action: serve.UIAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port (default 8080)"},
					&cli.StringFlag{Name: "backend", Usage: "backend base URL (default http://localhost:8000)"},
				},
			},
			{
				Name:   "submit",
				Usage:  "submit the form once and print the output region",
				Action: submit.SubmitAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "wikilink", Aliases: []string{"w"}, Usage: "wiki link or article title", Required: true},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "also fetch relevance-ranked links"},
					&cli.BoolFlag{Name: "no", Usage: "explicitly skip relevance-ranked links"},
					&cli.BoolFlag{Name: "json", Usage: "print query, output and error as JSON"},
					&cli.StringFlag{Name: "backend", Usage: "backend base URL (default http://localhost:8000)"},
				},
			},
			{
				Name:  "quickstart",
				Usage: "print a quick start guide",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "inspect the page cache",
				Subcommands: []*cli.Command{
					{
						Name:   "pages",
						Usage:  "list cached pages",
						Action: dbactions.PagesAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "max pages to list"},
						},
					},
					{
						Name:      "show",
						Usage:     "show a cached page",
						ArgsUsage: "<page-name|wikilink>",
						Action:    dbactions.PageAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "content", Usage: "include content and ranking HTML"},
						},
					},
					{
						Name:      "delete",
						Usage:     "drop a cached page",
						ArgsUsage: "<page-name|wikilink>",
						Action:    dbactions.DeleteAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
