package descriptor

import "fmt"

// Kind classifies a ConfigError
type Kind int

const (
	KindNoBuses Kind = iota + 1
	KindInvalidBusField
	KindInvalidParameterField
	KindDefaultValueOutOfRange
	KindDuplicateParameterName
	KindTooManyBuses
	KindTooManyParameters
)

func (k Kind) String() string {
	switch k {
	case KindNoBuses:
		return "NoBuses"
	case KindInvalidBusField:
		return "InvalidBusField"
	case KindInvalidParameterField:
		return "InvalidParameterField"
	case KindDefaultValueOutOfRange:
		return "DefaultValueOutOfRange"
	case KindDuplicateParameterName:
		return "DuplicateParameterName"
	case KindTooManyBuses:
		return "TooManyBuses"
	case KindTooManyParameters:
		return "TooManyParameters"
	default:
		return "Unknown"
	}
}

// ConfigError reports why a descriptor set was rejected. Only the fields
// relevant to Kind are set.
type ConfigError struct {
	Kind  Kind
	Index int     // offending bus or parameter index
	Field string  // offending record field
	Name  string  // offending parameter name
	Value float64 // offending default value
	Limit int     // exceeded limit
}

// Sentinels for errors.Is. They match any ConfigError of the same Kind.
var (
	ErrNoBuses                = &ConfigError{Kind: KindNoBuses}
	ErrInvalidBusField        = &ConfigError{Kind: KindInvalidBusField}
	ErrInvalidParameterField  = &ConfigError{Kind: KindInvalidParameterField}
	ErrDefaultValueOutOfRange = &ConfigError{Kind: KindDefaultValueOutOfRange}
	ErrDuplicateParameterName = &ConfigError{Kind: KindDuplicateParameterName}
	ErrTooManyBuses           = &ConfigError{Kind: KindTooManyBuses}
	ErrTooManyParameters      = &ConfigError{Kind: KindTooManyParameters}
)

func (e *ConfigError) Error() string {
	switch e.Kind {
	case KindNoBuses:
		return "descriptor declares no buses"
	case KindInvalidBusField:
		return fmt.Sprintf("bus %d: missing or invalid field %q", e.Index, e.Field)
	case KindInvalidParameterField:
		return fmt.Sprintf("parameter %d: missing or invalid field %q", e.Index, e.Field)
	case KindDefaultValueOutOfRange:
		return fmt.Sprintf("parameter %q: default value %g outside [0, 1]", e.Name, e.Value)
	case KindDuplicateParameterName:
		return fmt.Sprintf("duplicate parameter name %q", e.Name)
	case KindTooManyBuses:
		return fmt.Sprintf("descriptor declares more than %d buses", e.Limit)
	case KindTooManyParameters:
		return fmt.Sprintf("descriptor declares more than %d parameters", e.Limit)
	default:
		return "invalid descriptor"
	}
}

// Is matches sentinels by Kind
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func invalidBusField(index int, field string) error {
	return &ConfigError{Kind: KindInvalidBusField, Index: index, Field: field}
}

func invalidParameterField(index int, field string) error {
	return &ConfigError{Kind: KindInvalidParameterField, Index: index, Field: field}
}
