package flags

import (
	"fmt"

	"github.com/spf13/pflag"
)

// MustGetDefinedString attempts to get a non-empty string flag from the
// provided flag set or panics.
func MustGetDefinedString(flagName string, flags *pflag.FlagSet) string {
	flagVal := MustGetString(flagName, flags)
	if flagVal == "" {
		panic(undefinedValueMessage(flagName))
	}
	return flagVal
}

// MustGetString attempts to get a string flag from the provided flag set or
// panics.
func MustGetString(flagName string, flags *pflag.FlagSet) string {
	flagVal, err := flags.GetString(flagName)
	if err != nil {
		panic(notFoundMessage(flagName, err))
	}
	return flagVal
}

// MustGetInt attempts to get an int flag from the provided flag set or
// panics.
func MustGetInt(flagName string, flags *pflag.FlagSet) int {
	flagVal, err := flags.GetInt(flagName)
	if err != nil {
		panic(notFoundMessage(flagName, err))
	}
	return flagVal
}

// MustGetBool attempts to get a boolean flag from the provided flag set or
// panics.
func MustGetBool(flagName string, flags *pflag.FlagSet) bool {
	flagVal, err := flags.GetBool(flagName)
	if err != nil {
		panic(notFoundMessage(flagName, err))
	}
	return flagVal
}

func undefinedValueMessage(flagName string) string {
	return fmt.Sprintf("flag %s has undefined value", flagName)
}

func notFoundMessage(flagName string, err error) string {
	return fmt.Sprintf("could not get flag %s from flag set: %s", flagName, err.Error())
}
