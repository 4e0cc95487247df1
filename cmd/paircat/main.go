// Command paircat inspects a binary file as a chain of pairs bound to one
// of the worked-example 9P head layouts. It is a read-only demonstrator
// of package pair/layouts9p -- see DESIGN.md -- and never mutates its
// input.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/wolneykien/gopair/layouts9p"
	"github.com/wolneykien/gopair/pair"
)

var logger = log.Logger("paircat")

func main() {
	app := &cli.App{
		Name:  "paircat",
		Usage: "walk and print a pair chain bound to a 9P-style head layout",
		Commands: []*cli.Command{
			inspectCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("paircat: %s", err)
		os.Exit(1)
	}
}

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "walk a file's pair chain and print each pair's fields",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "layout",
			Usage:    "root layout: envelope, qid, string, bytearray",
			Required: true,
		},
	},
	Action: inspectAction,
}

func inspectAction(c *cli.Context) error {
	runID := uuid.New().String()

	if c.Args().Len() != 1 {
		return errors.New("inspect requires exactly one file argument")
	}
	path := c.Args().First()

	root, err := layoutByName(c.String("layout"))
	if err != nil {
		return errors.Wrapf(err, "run %s", runID)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "run %s: reading %s", runID, path)
	}

	logger.Debugf("run %s: binding %d bytes to layout %q", runID, len(buf), root.Name())

	p, err := pair.New(root, buf)
	if err != nil {
		return errors.Wrapf(err, "run %s", runID)
	}

	p.WalkErr(func(cur *pair.Pair, walkErr error) bool {
		if walkErr != nil {
			logger.Errorf("run %s: chain ended: %s", runID, walkErr)
			return false
		}
		printPair(runID, cur)
		return true
	})

	return nil
}

func printPair(runID string, p *pair.Pair) {
	_, headLen := p.HeadBuffer()
	fmt.Printf("run %s: layout=%s head_len=%d index=%d\n", runID, p.Layout().Name(), headLen, p.Index())
	for _, f := range p.Layout().Fields() {
		v, err := p.Lookup(f.Name)
		if err != nil {
			logger.Errorf("run %s: field %q: %s", runID, f.Name, err)
			continue
		}
		fmt.Printf("  %s = %v\n", f.Name, v.Scalar)
	}
}

func layoutByName(name string) (*pair.HeadLayout, error) {
	switch name {
	case "envelope":
		return layouts9p.Envelope, nil
	case "qid":
		return layouts9p.Qid, nil
	case "string":
		return layouts9p.String9P, nil
	case "bytearray":
		return layouts9p.ByteArray9P, nil
	default:
		return nil, errors.Errorf("unknown layout %q", name)
	}
}
