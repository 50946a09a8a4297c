package experiment

import (
	"fmt"
	"os"

	"github.com/EricCWWong/GSimulator/pkg/conf"
	"github.com/sirupsen/logrus"
)

// Exit codes of simulator binaries, following sysexits.h.
const (
	// ExUsage is returned for malformed or missing flags.
	ExUsage = 64
	// ExDataErr is returned for unreadable setup or material files.
	ExDataErr = 65
	// ExSoftware is returned when evaluation of the batch fails.
	ExSoftware = 70
	// ExIOErr is returned when figures, log or workbook cannot be written.
	ExIOErr = 74
)

var (
	// DumpConfigFlag name includes dash to excluded it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)
)

// Configure parses flags and sets log level. Returns true when log level is
// error, which is when progress bar replaces the log.
// Note: exits if configuration dump was requested or flags are malformed.
func Configure() bool {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}

	return conf.LogLevel() == logrus.ErrorLevel
}
