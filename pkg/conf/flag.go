package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have method for creating `envName` from its name and `clear` method
// for clearing corresponding environment variable from env.
type flagType interface {
	envName() string
	clear()
}

// definedFlags is a package variable which stores all the defined flags. It helps to find
// duplicates when defining flag with the same name.
var definedFlags = map[string]flagType{}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
// It stores generic data for each defined flag.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValue string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic("This flag was already defined. Flag definition is lack of duplicate check.")
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())
	if defaultValue != "" {
		c.Default(defaultValue)
	}

	return c
}

// envName returns name converted to environment variable name.
// In order to create environment variable name from flag we need to make it uppercase
// and add GSIM prefix. For instance: "results_dir" will be "GSIM_RESULTS_DIR".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(f.Model().Name))
}

// clear unset the corresponded environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// lookupDuplicate returns already registered flag of type T or panics when
// the flag was registered with different type.
func lookupDuplicate[T flagType](flagName string) (flagDef T, found bool) {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag == nil {
		return flagDef, false
	}

	flagDef, ok := duplicatedFlag.(T)
	if !ok {
		panic("Flag was redefined but with different type. Unify the type.")
	}
	return flagDef, true
}

func register(flagName string, flag flagType) {
	definedFlags[flagName] = flag
	isEnvParsed = false
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if flagDef, ok := lookupDuplicate[*StringFlag](flagName); ok {
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

// FileFlag represents flag with a path to an existing file.
type FileFlag struct {
	*StringFlag
}

// NewFileFlag is a constructor of FileFlag struct which checks if file exists.
func NewFileFlag(flagName string, description string, defaultValue string) *FileFlag {
	if flagDef, ok := lookupDuplicate[*FileFlag](flagName); ok {
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &FileFlag{
		StringFlag: &StringFlag{
			cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
			defaultValue:  defaultValue,
		},
	}
	flagDef.value = flagDef.ExistingFile()
	register(flagName, flagDef)
	return flagDef
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if flagDef, ok := lookupDuplicate[*IntFlag](flagName); ok {
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

// FloatFlag represents flag with float64 value.
type FloatFlag struct {
	*cliAndEnvFlag
	defaultValue float64
	value        *float64
}

// NewFloatFlag is a constructor of FloatFlag struct.
func NewFloatFlag(flagName string, description string, defaultValue float64) *FloatFlag {
	if flagDef, ok := lookupDuplicate[*FloatFlag](flagName); ok {
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &FloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatFloat(defaultValue, 'g', -1, 64)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Float64()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (f FloatFlag) Value() float64 {
	if !isEnvParsed {
		return f.defaultValue
	}

	return *f.value
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if flagDef, ok := lookupDuplicate[*BoolFlag](flagName); ok {
		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		return flagDef
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}
