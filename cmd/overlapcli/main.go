package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/severinstrobl/overlap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlapcli [scene.json]",
		Short: "Report sphere/element overlap volumes and areas for a scene file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOverlapCmd,
	}

	cmd.Flags().Bool("debug", false, "enable package-level diagnostic logging")
	cmd.Flags().Bool("area", false, "also report overlap surface areas")

	_ = viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("area", cmd.Flags().Lookup("area"))
	viper.SetDefault("scene", "scenes/scene.json")

	return cmd
}

func runOverlapCmd(cmd *cobra.Command, args []string) error {
	scenePath := viper.GetString("scene")
	if len(args) > 0 {
		scenePath = args[0]
	}

	overlap.Debug = viper.GetBool("debug")

	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	for si, sc := range cfg.Spheres {
		sphere, err := overlap.NewSphere(sc.Center.vector(), sc.Radius)
		if err != nil {
			return errors.Wrapf(err, "sphere %d", si)
		}

		for ei, ec := range cfg.Elements {
			element, err := ec.build()
			if err != nil {
				return errors.Wrapf(err, "element %d", ei)
			}

			volume, err := overlap.OverlapVolume(sphere, element)
			if err != nil {
				return errors.Wrapf(err, "overlap volume: sphere %d, element %d", si, ei)
			}

			logger.Info("overlap volume",
				zap.Int("sphere", si), zap.Int("element", ei), zap.Float64("volume", volume))
			fmt.Printf("sphere %d / element %d (%s): volume=%g\n", si, ei, ec.Kind, volume)

			if viper.GetBool("area") {
				areas, err := overlap.OverlapArea(sphere, element)
				if err != nil {
					return errors.Wrapf(err, "overlap area: sphere %d, element %d", si, ei)
				}

				fmt.Printf("  sphere-surface=%g face-areas=%v total-face-area=%g\n",
					areas[0], areas[1:len(areas)-1], areas[len(areas)-1])
			}
		}
	}

	return nil
}
