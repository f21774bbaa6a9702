// Package span implements the declaration span table: a map from stable
// textual keys to byte ranges in a file's source text, used by the
// diagnostic engine to resolve node locations and by navigation tooling
// outside this module's scope.
package span

import "fmt"

// Range is a half-open byte range [Start, End) into a file's source text.
type Range struct {
	Start int
	End   int
}

// Table maps declaration keys to byte ranges for one file. Keys follow the
// scheme in spec.md §3: re-inserting a key overwrites the prior range,
// since the parser is expected to emit each declaration exactly once.
type Table struct {
	entries map[string]Range
}

// NewTable returns an empty span table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Range)}
}

// Insert records the byte range for key, overwriting any prior entry.
func (t *Table) Insert(key string, r Range) {
	t.entries[key] = r
}

// Lookup returns the byte range for key, if present.
func (t *Table) Lookup(key string) (Range, bool) {
	r, ok := t.entries[key]
	return r, ok
}

// Len returns the number of distinct keys in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// NamespaceKey builds the span-table key for a namespace declaration.
func NamespaceKey(fqn string) string { return fmt.Sprintf("namespace::%s", fqn) }

// typeKey builds the span-table key for a class/struct/interface/enum/record/delegate.
func typeKey(prefix, ns, name string) string {
	if ns == "" {
		return fmt.Sprintf("%s::::%s", prefix, name)
	}
	return fmt.Sprintf("%s::%s::%s", prefix, ns, name)
}

// ClassKey builds the span-table key for a class declaration.
func ClassKey(ns, name string) string { return typeKey("class", ns, name) }

// StructKey builds the span-table key for a struct declaration.
func StructKey(ns, name string) string { return typeKey("struct", ns, name) }

// InterfaceKey builds the span-table key for an interface declaration.
func InterfaceKey(ns, name string) string { return typeKey("interface", ns, name) }

// EnumKey builds the span-table key for an enum declaration.
func EnumKey(ns, name string) string { return typeKey("enum", ns, name) }

// RecordKey builds the span-table key for a record declaration.
func RecordKey(ns, name string) string { return typeKey("record", ns, name) }

// DelegateKey builds the span-table key for a delegate declaration.
func DelegateKey(ns, name string) string { return typeKey("delegate", ns, name) }

// MethodKey builds the span-table key for a method, given its owner path
// (namespace + dot-joined class chain, see ast.ClassRefData).
func MethodKey(ownerPath, name string) string { return fmt.Sprintf("method::%s::%s", ownerPath, name) }

// CtorKey builds the span-table key for a constructor.
func CtorKey(ownerPath string) string { return fmt.Sprintf("ctor::%s", ownerPath) }

// PropertyKey builds the span-table key for a property.
func PropertyKey(ownerPath, name string) string {
	return fmt.Sprintf("property::%s::%s", ownerPath, name)
}

// OwnerPath joins a namespace path (possibly empty) with a dot-joined class
// chain, matching the `<NS?>::<ClassPath>` scheme used by Method/Ctor/Property keys.
func OwnerPath(nsPath string, classChain []string) string {
	classPath := ""
	for i, c := range classChain {
		if i > 0 {
			classPath += "."
		}
		classPath += c
	}
	if nsPath == "" {
		return classPath
	}
	return nsPath + "::" + classPath
}
