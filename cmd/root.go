package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/golangdaddy/roadrash/log"
	"github.com/golangdaddy/roadrash/pkg/config"
	"github.com/golangdaddy/roadrash/pkg/game"
	"github.com/golangdaddy/roadrash/pkg/window"
)

const envPrefix = "ROADRASH"

var (
	cfgFile   string
	logLevel  string
	logFormat string
)

// rootCmd opens the game window when called without a subcommand
var rootCmd = &cobra.Command{
	Use:          "roadrash",
	Short:        "Pseudo-3D motorbike racer",
	Long:         `Race a motorbike down a curving, rolling road and dodge the rival bikers parked on it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init(logLevel, logFormat)
	},
}

// runRoot is rootCmd's RunE; it is assigned in init to avoid an
// initialization cycle through loadConfig
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sim := game.New(cfg, rand.New(rand.NewSource(cfg.Seed)), log.Logger)
	scene := game.NewScene(sim, rand.New(rand.NewSource(cfg.Seed+1)))
	return window.Run(window.NewGame(sim, scene, window.KeyboardInput{}, log.Logger))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger.Error("roadrash failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runRoot
	cobra.OnInitialize(initConfig)

	def := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roadrash.yml)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	pf.Int("width", def.Width, "logical screen width")
	pf.Int("height", def.Height, "logical screen height")
	pf.Int("fps", def.FPS, "simulation steps per second")
	pf.String("title", def.Title, "window title")

	pf.Int("segments", def.Segments, "number of segments in the track ring")
	pf.Float64("segment-length", def.SegmentLength, "length of one segment")
	pf.Float64("road-width", def.RoadWidth, "half width of the road")
	pf.Int("traffic", def.TrafficCount, "rival bikes seeded per race")
	pf.Int64("seed", def.Seed, "random seed, 0 picks one from the clock")

	pf.Int("draw-distance", def.DrawDistance, "segments projected per frame")
	pf.Float64("camera-depth", def.CameraDepth, "perspective factor")
	pf.Float64("camera-height", def.CameraHeight, "camera height above the road")
	pf.Float64("horizon-ratio", def.HorizonRatio, "horizon height as a fraction of the screen")
	pf.Float64("curve-scale", def.CurveScale, "how strongly curvature bends the road")
	pf.Float64("fog-exponent", def.FogExponent, "exponent of the distance fog curve")
	pf.Float64("sprite-scale", def.SpriteScale, "size of roadside objects and rivals")

	pf.Float64("max-speed", def.MaxSpeed, "top speed in world units per second")
	pf.Float64("idle-wheel-rate", def.IdleWheelRate, "wheel spin on the title screen, radians per second")
	pf.Float64("wheel-rate", def.WheelRate, "wheel spin per world unit travelled")
	pf.Float64("score-rate", def.ScoreRate, "points per second at top speed")

	pf.Float64("collision-threshold", def.CollisionThreshold, "lateral distance that counts as a hit")
	pf.Int("collision-ahead", def.CollisionAhead, "segments ahead checked for rivals")
	pf.Int("collision-behind", def.CollisionBehind, "segments behind checked for rivals")

	rootCmd.AddCommand(newSimCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory and the working directory with name ".roadrash".
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roadrash")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --max-speed to ROADRASH_MAX_SPEED
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}

// loadConfig decodes the game settings from the flags, which by now carry
// any values from the config file and environment
func loadConfig() (config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return config.Config{}, fmt.Errorf("bind flags: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	log.Logger.Debug("config loaded", zap.Any("config", cfg))
	return cfg, nil
}
