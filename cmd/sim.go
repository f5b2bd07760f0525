package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/log"
	"github.com/golangdaddy/roadrash/pkg/draw"
	"github.com/golangdaddy/roadrash/pkg/game"
)

type simOptions struct {
	frames int
	script string
	json   bool
}

func newSimCmd() *cobra.Command {
	opts := simOptions{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Race headless with scripted controls",
		Long: `Run the game without a window. Controls come from a script of comma separated
steps such as "start:1,throttle:120,throttle+left:30,brake:60"; every frame is
rendered into an in-memory recorder and a summary is logged at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.frames, "frames", 600, "maximum number of frames to run")
	cmd.Flags().StringVar(&opts.script, "script", "start:1,throttle:599", "control script")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the run summary as JSON on stdout")
	return cmd
}

func runSim(cmd *cobra.Command, opts simOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := game.ParseScript(opts.script)
	if err != nil {
		return err
	}

	sim := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)), log.Logger)
	scene := game.NewScene(sim, rand.New(rand.NewSource(cfg.Seed+1)))
	rec := draw.NewRecorder(cfg.Width, cfg.Height)
	sum := game.Play(sim, scene, script, opts.frames, 1/float64(cfg.FPS), rec)

	events := lo.Map(sum.Events, func(r game.Record, _ int) string {
		return fmt.Sprintf("%d:%s", r.Frame, r.Event)
	})
	log.Logger.Info("simulation finished",
		zap.Int64("seed", cfg.Seed),
		zap.Int("frames", sum.Frames),
		zap.Int("starts", sum.Starts),
		zap.Int("crashes", sum.Crashes),
		zap.Strings("events", events),
		zap.Int("commands", sum.Commands),
		zap.Stringer("phase", sum.Rider.Phase),
		zap.Int("score", sum.Rider.Points()),
		zap.Float64("position", sum.Rider.Position),
	)

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
	}
	return nil
}
