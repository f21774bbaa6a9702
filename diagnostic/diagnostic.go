// Package diagnostic implements the analyzer's diagnostic taxonomy and the
// sole insertion point into a session's diagnostic list.
package diagnostic

import "fmt"

// Severity classifies a diagnostic's urgency.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Code is a stable, closed-taxonomy diagnostic code string (e.g. "BSE02001").
// Consumers rely on the code string; no code is renumbered without a schema
// version bump (spec.md §6).
type Code string

// The closed code taxonomy. BSE = error-severity-by-default structural/semantic
// codes, BSW = warning-severity-by-default style codes.
const (
	CodeCtorNoAsync                 Code = "BSE01001"
	CodeCtorNoVirtualOrAbstract     Code = "BSE01003"
	CodeCtorNameMismatch            Code = "BSE01005"
	CodeCtorInvalidBaseCall         Code = "BSE01007"
	CodeCtorNoOverride              Code = "BSE01009"
	CodeMethodNoAbstractBody        Code = "BSE02001"
	CodeMethodBodyRequired          Code = "BSE02002"
	CodeSealedClassNoVirtualMethods Code = "BSE02003"
	CodeMethodNoStaticVirtual       Code = "BSE02005"
	CodeMethodNoStaticOverride      Code = "BSE02006"
	CodeInterfaceMethodsNoBody      Code = "BSE02008"
	CodeAsyncReturnsTask            Code = "BSE02009"
	CodeMethodParamNamesNotUnique   Code = "BSE02010"
	CodeDuplicateSymbol             Code = "BSE03011"
	CodeUnresolvedOrAmbiguousName   Code = "BSE03012"
	CodeInterfaceAccess             Code = "BSE04002"
	CodeStructAccess                Code = "BSE04003"
	CodeStaticCtorAccessModifier    Code = "BSE04005"
	CodeAbstractNonPrivate          Code = "BSE04006"
	CodeVirtualNonPrivate           Code = "BSE04007"
	CodeSealedOnlyOnOverride        Code = "BSE04009"
	CodeAbstractOnlyInAbstract      Code = "BSE04010"
	CodeInternalError               Code = "BSE09000"

	CodeNamingClass     Code = "BSW02001"
	CodeNamingGeneric   Code = "BSW02002"
	CodeNamingMethod    Code = "BSW02003"
	CodeNamingProperty  Code = "BSW02004"
	CodeNamingField     Code = "BSW02005"
	CodeNamingConstant  Code = "BSW02006"
	CodeNamingParameter Code = "BSW02007"
	CodeNamingInterface Code = "BSW02008"
)

// Location pinpoints a diagnostic to a file position resolved from the span
// table (spec.md invariant 3: Location.File always equals the owning
// session's file path).
type Location struct {
	File   string
	Line   int
	Column int
}

// Diagnostic is one emitted finding.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Location *Location
}

func (d Diagnostic) String() string {
	if d.Location == nil {
		return fmt.Sprintf("%s [%s]: %s", d.Code, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s [%s]: %s", d.Location.File, d.Location.Line, d.Location.Column, d.Code, d.Severity, d.Message)
}

// DefaultSeverity returns the conventional severity for a code, used by
// Builder.New when the caller does not override it with WithSeverity.
func DefaultSeverity(c Code) Severity {
	switch {
	case len(c) >= 3 && c[:3] == "BSW":
		return SeverityWarning
	default:
		return SeverityError
	}
}
