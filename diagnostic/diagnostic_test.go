package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	items []Diagnostic
}

func (f *fakeSink) AddDiagnostic(d Diagnostic) { f.items = append(f.items, d) }

func TestBuilderDefaultsSeverityFromCode(t *testing.T) {
	sink := &fakeSink{}

	New(CodeNamingClass).WithMessage("class should be PascalCase").Emit(sink)
	New(CodeDuplicateSymbol).WithMessage("duplicate symbol").Emit(sink)

	require.Len(t, sink.items, 2)
	require.Equal(t, SeverityWarning, sink.items[0].Severity)
	require.Equal(t, SeverityError, sink.items[1].Severity)
}

func TestBuilderWithSeverityOverridesDefault(t *testing.T) {
	sink := &fakeSink{}
	New(CodeNamingClass).WithSeverity(SeverityError).Emit(sink)
	require.Equal(t, SeverityError, sink.items[0].Severity)
}

func TestCollectionSortOrdersByFileLineColumnCode(t *testing.T) {
	var c Collection
	c.Add(Diagnostic{Code: CodeNamingField, Location: &Location{File: "b.cs", Line: 1, Column: 1}})
	c.Add(Diagnostic{Code: CodeNamingClass, Location: &Location{File: "a.cs", Line: 5, Column: 1}})
	c.Add(Diagnostic{Code: CodeNamingMethod, Location: nil})
	c.Add(Diagnostic{Code: CodeNamingClass, Location: &Location{File: "a.cs", Line: 2, Column: 9}})

	c.Sort()

	require.Equal(t, []Code{CodeNamingMethod, CodeNamingClass, CodeNamingClass, CodeNamingField}, []Code{
		c.Items[0].Code, c.Items[1].Code, c.Items[2].Code, c.Items[3].Code,
	})
}

func TestDiagnosticStringIncludesLocationWhenPresent(t *testing.T) {
	d := Diagnostic{Code: CodeNamingClass, Severity: SeverityWarning, Message: "bad name"}
	require.Equal(t, "BSW02001 [warning]: bad name", d.String())

	d.Location = &Location{File: "a.cs", Line: 3, Column: 4}
	require.Equal(t, "a.cs:3:4: BSW02001 [warning]: bad name", d.String())
}
