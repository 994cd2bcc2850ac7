package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/ui"
)

var (
	gameConfig = game.NewConfig()
	configPath string
	dumpConfig bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "minesweep",
	Short:        "Play Minesweeper on a configurable board",
	SilenceUsage: true,
	Long: `minesweep is a desktop Minesweeper game.

Run with no arguments to play a 5x5 board with 5 mines
	minesweep

Pick the board size, mine count and seed
	minesweep -w 9 -h 9 -m 10 --seed 42

Left click reveals a cell, right click toggles a flag. A game is won once
every safe cell is revealed and exactly one flag sits on each mine.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			game.Log.SetLevel(logrus.DebugLevel)
		}

		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if dumpConfig {
			fmt.Print(config.Serialize())
			return nil
		}

		// Fail on bad parameters before a window is opened
		session, err := game.NewSession(config.Params())
		if err != nil {
			return err
		}

		pixelgl.Run(func() {
			if err := ui.Run(config, session); err != nil {
				game.Log.WithError(err).Error("ui exited")
			}
		})
		return nil
	},
}

// resolveConfig loads the config file, if any, and lays explicitly set flags
// over it
func resolveConfig(cmd *cobra.Command) (game.Config, error) {
	if configPath == "" {
		return gameConfig, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return gameConfig, errors.Wrap(err, "opening config")
	}
	defer file.Close()

	config, err := game.LoadConfig(file)
	if err != nil {
		return config, errors.Wrapf(err, "loading %s", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = gameConfig.Width
	}
	if flags.Changed("height") {
		config.Height = gameConfig.Height
	}
	if flags.Changed("mines") {
		config.Mines = gameConfig.Mines
	}
	if flags.Changed("seed") {
		config.Seed = gameConfig.Seed
	}
	if flags.Changed("director") {
		config.Director = gameConfig.Director
	}
	if flags.Changed("window-width") {
		config.WindowWidth = gameConfig.WindowWidth
	}
	if flags.Changed("window-height") {
		config.WindowHeight = gameConfig.WindowHeight
	}
	return config, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	game.Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Mines, "mines", "m", gameConfig.Mines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&gameConfig.Director, "director", "d", false, "Make the computer play")
	rootCmd.Flags().Float64Var(&gameConfig.WindowWidth, "window-width", gameConfig.WindowWidth, "Width of the board area, in pixels")
	rootCmd.Flags().Float64Var(&gameConfig.WindowHeight, "window-height", gameConfig.WindowHeight, "Height of the board area, in pixels")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file to read settings from; flags take precedence")
	rootCmd.Flags().BoolVar(&dumpConfig, "dump-config", false, "Print the resolved settings as YAML and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every move")
}
