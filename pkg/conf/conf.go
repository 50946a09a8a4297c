// conf is a helper for GSimulator configuration for both command line interface
// and environment variables.
// It gives ability to register arguments which will be fetched from
// CLI input OR environment variable.
// By default it registers following options:
// <GSIM_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// When `ParseEnv` is executed, only the environment arguments are parsed.
// `ParseEnv` can be run multiple times.
//
// When `ParseFlags` is executed, the arguments from both CLI and Env are parsed.
// In case of --help option - it prints help.

package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to every flag name to build its environment variable.
const EnvironmentPrefix = "GSIM"

var (
	app = kingpin.New("gsimulator", "Quantum point contact conductance simulator.")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parse both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses given arguments and environment variables.
func ParseArgs(args []string) error {
	_, err := app.Parse(args)
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse command line flags")
}

// ParseEnv parse the environment for arguments.
func ParseEnv() error {
	return errors.Wrap(ParseArgs([]string{}), "could not parse environment flags")
}

type flagDefinition struct{ Name, Value, Default, Help string }

// getFlagsDefinition returns current, default, keys and description for every flag.
// Notes: order is important because it logically groups flags.
func getFlagsDefinition() (flags []flagDefinition) {
	for _, flag := range app.Model().Flags {
		// Skip flags that aren't compatible with environment based configuration.
		if strings.Contains(flag.Name, "-") {
			continue
		}

		flags = append(flags, flagDefinition{
			Name:    flag.Name,
			Help:    flag.Help,
			Default: strings.Join(flag.Default, ","),
			Value:   flag.Value.String(),
		})
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {
		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		// Override current values with provided from flagMap.
		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s_%s=%v\n", EnvironmentPrefix, strings.ToUpper(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
