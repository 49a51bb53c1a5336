package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue         = "true"
	toggleFalseCanonicalValue        = "false"
	toggleYesLiteral                 = "yes"
	toggleNoLiteral                  = "no"
	toggleOnLiteral                  = "on"
	toggleOffLiteral                 = "off"
	toggleOneLiteral                 = "1"
	toggleZeroLiteral                = "0"
	toggleYLiteral                   = "y"
	toggleNLiteral                   = "n"
	toggleTypeNameConstant           = "yes|no"
	toggleParseErrorTemplateConstant = "invalid toggle value %q"
	toggleUsagePlaceholderConstant   = "<yes|no>"
	toggleUsageTemplateConstant      = "`%s` %s"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValue: {},
		toggleYesLiteral:         {},
		toggleOnLiteral:          {},
		toggleOneLiteral:         {},
		toggleYLiteral:           {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValue: {},
		toggleNoLiteral:           {},
		toggleOffLiteral:          {},
		toggleZeroLiteral:         {},
		toggleNLiteral:            {},
	}
)

// Toggle records a yes/no flag value together with whether the user supplied it.
type Toggle struct {
	Value    bool
	Provided bool
}

// AddToggleFlag registers a flag that requires an explicit yes/no style value.
// The returned Toggle stays unprovided until the flag appears on the command line.
func AddToggleFlag(flagSet *pflag.FlagSet, name string, shorthand string, usage string) *Toggle {
	toggle := &Toggle{}
	if flagSet == nil || len(name) == 0 {
		return toggle
	}

	formattedUsage := fmt.Sprintf(toggleUsageTemplateConstant, toggleUsagePlaceholderConstant, strings.TrimSpace(usage))
	flagSet.VarP(&toggleFlagValue{toggle: toggle}, name, shorthand, formattedUsage)
	return toggle
}

// ParseToggle converts yes/no, on/off, true/false, y/n and 1/0 literals into a boolean.
func ParseToggle(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}
	return false, fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
}

type toggleFlagValue struct {
	toggle *Toggle
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := ParseToggle(rawValue)
	if parseError != nil {
		return parseError
	}
	value.toggle.Value = parsedValue
	value.toggle.Provided = true
	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil || value.toggle == nil || !value.toggle.Value {
		return toggleFalseCanonicalValue
	}
	return toggleTrueCanonicalValue
}

func (value *toggleFlagValue) Type() string {
	return toggleTypeNameConstant
}
