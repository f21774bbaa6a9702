package span

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAndLookupRoundTrips(t *testing.T) {
	tbl := NewTable()
	tbl.Insert("class::N::Widget", Range{Start: 10, End: 42})

	r, ok := tbl.Lookup("class::N::Widget")
	require.True(t, ok)
	require.Equal(t, Range{Start: 10, End: 42}, r)
}

func TestLookupMissingKeyReturnsFalse(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Lookup("missing")
	require.False(t, ok)
}

func TestInsertOverwritesPriorRangeForSameKey(t *testing.T) {
	tbl := NewTable()
	tbl.Insert("k", Range{Start: 0, End: 1})
	tbl.Insert("k", Range{Start: 5, End: 9})

	r, ok := tbl.Lookup("k")
	require.True(t, ok)
	require.Equal(t, Range{Start: 5, End: 9}, r)
	require.Equal(t, 1, tbl.Len())
}

func TestLenCountsDistinctKeys(t *testing.T) {
	tbl := NewTable()
	tbl.Insert("a", Range{})
	tbl.Insert("b", Range{})
	tbl.Insert("a", Range{Start: 1})

	require.Equal(t, 2, tbl.Len())
}

func TestNamespaceKeyFormat(t *testing.T) {
	require.Equal(t, "namespace::N.Inner", NamespaceKey("N.Inner"))
}

func TestTypeKeyBuildersUseDoubleColonSeparatorsEvenWithoutNamespace(t *testing.T) {
	require.Equal(t, "class::N::Widget", ClassKey("N", "Widget"))
	require.Equal(t, "class::::Widget", ClassKey("", "Widget"))
	require.Equal(t, "struct::N::Point", StructKey("N", "Point"))
	require.Equal(t, "interface::N::IWidget", InterfaceKey("N", "IWidget"))
	require.Equal(t, "enum::N::Color", EnumKey("N", "Color"))
	require.Equal(t, "record::N::Point", RecordKey("N", "Point"))
	require.Equal(t, "delegate::N::Handler", DelegateKey("N", "Handler"))
}

func TestOwnerPathJoinsNamespaceAndDottedClassChain(t *testing.T) {
	require.Equal(t, "N::Outer.Inner", OwnerPath("N", []string{"Outer", "Inner"}))
	require.Equal(t, "Outer.Inner", OwnerPath("", []string{"Outer", "Inner"}))
	require.Equal(t, "N::Widget", OwnerPath("N", []string{"Widget"}))
}

func TestMethodCtorPropertyKeysUseOwnerPath(t *testing.T) {
	owner := OwnerPath("N", []string{"Widget"})
	require.Equal(t, "method::N::Widget::DoWork", MethodKey(owner, "DoWork"))
	require.Equal(t, "ctor::N::Widget", CtorKey(owner))
	require.Equal(t, "property::N::Widget::Name", PropertyKey(owner, "Name"))
}
