// Package extloader implements the Index-phase external-metadata loader
// (spec.md §4.9) and its cross-invocation cache (SPEC_FULL.md §4.15). Real
// PE/IL binary parsing is an out-of-scope external collaborator (spec.md
// §1); Loader is an injected interface so the pass can be driven by
// whatever metadata reader a deployment wires in.
package extloader

// TypeSummary is one externally-loaded type's entry in IlTypeIndex.
type TypeSummary struct {
	FullName string
	Assembly string
	Version  string
}

// IlTypeIndex maps a type's fully-qualified name to one declaring
// assembly's summary. When two assemblies declare the same name, the one
// with the higher semantic version wins if both versions are valid semver;
// otherwise the first one observed is kept (see insertType).
type IlTypeIndex struct {
	ByFQN map[string]TypeSummary
}

func newIlTypeIndex() *IlTypeIndex {
	return &IlTypeIndex{ByFQN: map[string]TypeSummary{}}
}

// AssemblyRecord describes one successfully loaded metadata file.
type AssemblyRecord struct {
	Path      string
	Name      string
	TypeCount int
}

// ExternalAssemblyIndex lists every assembly the loader pass resolved this
// session; its presence in the session is the pass's idempotency marker.
type ExternalAssemblyIndex struct {
	Assemblies []AssemblyRecord
}

// TypeEnvironment seeds the binding/type-check chain with the built-in
// primitive and BCL alias names every C#-like program can reference without
// an explicit external assembly.
type TypeEnvironment struct {
	KnownNames map[string]bool
}

// WithDefaults returns a TypeEnvironment pre-populated with the primitive
// keyword set.
func WithDefaults() *TypeEnvironment {
	names := map[string]bool{}
	for _, n := range []string{
		"void", "bool", "byte", "sbyte", "char", "short", "ushort", "int",
		"uint", "long", "ulong", "float", "double", "decimal", "string",
		"object", "dynamic", "var",
	} {
		names[n] = true
	}
	return &TypeEnvironment{KnownNames: names}
}
