package submit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dtnitsch/wikilens/internal/common"
	"github.com/dtnitsch/wikilens/models"
	"github.com/dtnitsch/wikilens/pkg/coordinator"
	"github.com/urfave/cli/v2"
)

type output struct {
	Query  string `json:"query"`
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// SubmitAction runs one form submission from the command line and prints the
// output region. The exit status is 1 when either request failed.
func SubmitAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	if c.Bool("yes") && c.Bool("no") {
		return cli.Exit("Error: --yes and --no are mutually exclusive", 2)
	}
	input := models.FormInput{Wikilink: c.String("wikilink")}
	switch {
	case c.Bool("yes"):
		input.Choice = models.ChoiceYes
	case c.Bool("no"):
		input.Choice = models.ChoiceNo
	}

	out := &coordinator.Region{}
	coord := coordinator.New(coordinator.NewClient(cfg.BackendURL, nil), logger)
	res := coord.Submit(c.Context, input, out)

	if c.Bool("json") {
		o := output{Query: res.Query.Encode(), Output: out.String()}
		if err := res.Err(); err != nil {
			o.Error = err.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(out.String())
	}

	if res.Err() != nil {
		return cli.Exit("", 1)
	}
	return nil
}
