package main

import (
	"os"

	"github.com/EricCWWong/GSimulator/pkg/conf"
	"github.com/EricCWWong/GSimulator/pkg/evaluator"
	"github.com/EricCWWong/GSimulator/pkg/experiment"
	"github.com/EricCWWong/GSimulator/pkg/logger"
	"github.com/EricCWWong/GSimulator/pkg/material"
	"github.com/EricCWWong/GSimulator/pkg/model"
	"github.com/EricCWWong/GSimulator/pkg/setup"
	"github.com/EricCWWong/GSimulator/pkg/utils/errutil"
	"github.com/EricCWWong/GSimulator/pkg/utils/fs"
	"github.com/EricCWWong/GSimulator/pkg/utils/uuid"
	"github.com/EricCWWong/GSimulator/pkg/visualization"
	"github.com/sirupsen/logrus"
)

var (
	// Inputs.
	setupFlag        = conf.NewFileFlag("setup", "CSV file with hw_x, w_y/w_x, V_sd, B and angle of every configuration.", "")
	materialFlag     = conf.NewFileFlag("material", "CSV file with name, g factor and effective mass of materials.", "")
	materialNameFlag = conf.NewStringFlag("material_name", "Material to simulate. First material of the file when empty.", "")

	// Evaluation.
	channelsFlag = conf.NewIntFlag("channels", "Number of subbands taken into account.", evaluator.DefaultConfig().Channels)
	offsetFlag   = conf.NewFloatFlag("offset", "Energy offset between consecutive conductance traces.", evaluator.DefaultConfig().Offset)

	// Output.
	graphNameFlag  = conf.NewStringFlag("graph_name", "Title of the conductance figure.", "conductance")
	formatFlag     = conf.NewStringFlag("format", "Format of saved figures: pdf, png, svg, eps, jpg, tif.", visualization.DefaultFormat)
	saveFigFlag    = conf.NewStringFlag("savefig", "Save figures under this name in results directory. Nothing is saved when empty.", "")
	resultsDirFlag = conf.NewStringFlag("results_dir", "Directory for saved figures and log.", fs.DefaultResultsDirectory)
	xlsxFlag       = conf.NewStringFlag("xlsx", "Export summary, traces and derivatives to this xlsx file.", "")
)

func main() {
	conf.SetAppName("gsimulator")
	conf.SetHelp(`GSimulator evaluates the saddle point model of a quantum point contact for every configuration of the setup file.
It prints a summary of derived energies, draws conductance traces against Fermi energy and, for more than one configuration, a differential conductance contour.`)

	errorLevelEnabled := experiment.Configure()

	if setupFlag.Value() == "" || materialFlag.Value() == "" {
		logrus.Errorf("Both --setup and --material files are required")
		os.Exit(experiment.ExUsage)
	}

	runID, err := uuid.New()
	errutil.CheckWithContext(err, "Cannot generate run ID")

	// Log goes next to figures only when they are saved.
	logDirectory := ""
	if saveFigFlag.Value() != "" {
		logDirectory = resultsDirFlag.Value()
	}
	logFile, err := logger.Initialize(conf.LogLevel(), logDirectory, runID)
	experiment.CheckWithExitCode(err, "Cannot initialize logging", experiment.ExIOErr)
	if logFile != nil {
		defer logFile.Close()
	}

	materials, err := material.ReadFile(materialFlag.Value())
	experiment.CheckWithExitCode(err, "Cannot load materials", experiment.ExDataErr)
	chosen, err := materials.Lookup(materialNameFlag.Value())
	experiment.CheckWithExitCode(err, "Cannot select material", experiment.ExDataErr)
	logrus.Infof("Simulating %s (g = %g, m* = %g)", chosen.Name, chosen.GFactor, chosen.EffectiveMass)

	batch, err := setup.ReadFile(setupFlag.Value())
	experiment.CheckWithExitCode(err, "Cannot load setup", experiment.ExDataErr)
	logrus.Infof("Loaded %d configuration(s) from %q", len(batch), setupFlag.Value())

	sweepEvaluator := evaluator.New(model.NewFactory(chosen), evaluator.Config{
		Channels: channelsFlag.Value(),
		Offset:   offsetFlag.Value(),
	})

	// Progress bar replaces the log when log level is error.
	progress := experiment.NewProgress(os.Stderr, len(batch), errorLevelEnabled)
	sweepEvaluator.OnEvaluated(progress.Observer())
	result, err := sweepEvaluator.Evaluate(batch)
	progress.Finish()
	experiment.CheckWithExitCode(err, "Cannot evaluate setup", experiment.ExSoftware)

	visualization.PrintSummary(os.Stdout, result.Summary)

	renderer := visualization.NewRenderer(resultsDirFlag.Value(), formatFlag.Value())
	rendered, err := renderer.Render(result, graphNameFlag.Value(), saveFigFlag.Value())
	experiment.CheckWithExitCode(err, "Cannot render figures", experiment.ExIOErr)
	for _, file := range rendered.Files {
		logrus.Debugf("Saved %q", file)
	}

	if xlsxFlag.Value() != "" {
		err = visualization.SaveWorkbook(xlsxFlag.Value(), result, visualization.RunInfo{
			ID:       runID,
			Material: chosen.Name,
			Setup:    setupFlag.Value(),
			Flags:    conf.GetFlags(),
		})
		experiment.CheckWithExitCode(err, "Cannot export workbook", experiment.ExIOErr)
		logrus.Infof("Workbook saved to %q", xlsxFlag.Value())
	}
}
