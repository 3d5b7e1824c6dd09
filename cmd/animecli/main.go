// Command animecli runs the ANIME matching and interpolation engine over
// two JSON-encoded polyline collections and prints the result as JSON.
//
// Grounded on the cmd/genlinesegments CLI pattern: an urfave/cli/v3
// command with validated flags, JSON in, JSON out, errors surfaced via the
// command's Action return value rather than manual os.Exit calls.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/anime"
	"github.com/mikenye/anime/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "animecli",
		Usage:     "Matches source and target polyline collections and transfers an attribute between them",
		UsageText: "animecli --source <file> --target <file> --distance-tolerance <value> --angle-tolerance <value> [--attr <file>] [--mode extensive|intensive]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Usage:    "Path to a JSON file containing the source polylines",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "target",
				Usage:    "Path to a JSON file containing the target polylines",
				Required: true,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "distance-tolerance",
				Usage:    "Maximum segment-to-segment distance for candidacy",
				Required: true,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "angle-tolerance",
				Usage:    "Maximum absolute angle difference in degrees for candidacy",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "attr",
				Usage:    "Path to a JSON file containing the source attribute vector; if omitted, only matches are printed",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "mode",
				Usage:    "Interpolation mode when --attr is given: extensive or intensive",
				Value:    "extensive",
				OnlyOnce: true,
				Validator: func(m string) error {
					if m != "extensive" && m != "intensive" {
						return fmt.Errorf("mode must be \"extensive\" or \"intensive\"")
					}
					return nil
				},
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type result struct {
	Matches []anime.MatchTriple `json:"matches"`
	Values  []float64           `json:"values,omitempty"`
	Targets []int               `json:"target_indices,omitempty"`
}

func run(_ context.Context, cmd *cli.Command) error {
	source, err := loadPolylines(cmd.String("source"))
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	target, err := loadPolylines(cmd.String("target"))
	if err != nil {
		return fmt.Errorf("reading target: %w", err)
	}

	inst, err := anime.Build(source, target, cmd.Float("distance-tolerance"), cmd.Float("angle-tolerance"))
	if err != nil {
		return err
	}
	if err := inst.FindMatches(); err != nil {
		return err
	}

	out := result{}
	out.Matches, err = inst.Matches()
	if err != nil {
		return err
	}

	if attrPath := cmd.String("attr"); attrPath != "" {
		y, err := loadAttr(attrPath)
		if err != nil {
			return fmt.Errorf("reading attr: %w", err)
		}
		switch cmd.String("mode") {
		case "intensive":
			out.Values, out.Targets, err = inst.InterpolateIntensive(y)
		default:
			out.Values, out.Targets, err = inst.InterpolateExtensive(y)
		}
		if err != nil {
			return err
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func loadPolylines(path string) ([][]point.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw [][][2]float64
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}
	polylines := make([][]point.Point, len(raw))
	for i, pl := range raw {
		pts := make([]point.Point, len(pl))
		for j, xy := range pl {
			pts[j] = point.New(xy[0], xy[1])
		}
		polylines[i] = pts
	}
	return polylines, nil
}

func loadAttr(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var y []float64
	if err := json.NewDecoder(f).Decode(&y); err != nil {
		return nil, err
	}
	return y, nil
}
