package semantic

import (
	"github.com/flanksource/bsharp-analyzer/ast"
	"github.com/flanksource/bsharp-analyzer/pass"
	"github.com/flanksource/bsharp-analyzer/session"
)

// noop is shared by every placeholder pass below: spec.md §4.8 reserves the
// type-check/overload/generics/flow/nullability/attributes/access/extensions
// stages for a fuller checker this analyzer does not yet implement, but
// still threads the dependency chain through the pipeline so a future pass
// can be inserted without renumbering anything downstream.
func noop(*ast.CompilationUnit, *session.Session) {}

// NewTypesPass is the semantic.types placeholder, depending on binding.
func NewTypesPass() pass.Pass {
	return pass.NewFunc("semantic.types", pass.Semantic, []string{"semantic.binding"}, noop)
}

// NewOverloadPass is the semantic.overload placeholder, depending on types.
func NewOverloadPass() pass.Pass {
	return pass.NewFunc("semantic.overload", pass.Semantic, []string{"semantic.types"}, noop)
}

// NewGenericsPass is the semantic.generics placeholder, depending on overload.
func NewGenericsPass() pass.Pass {
	return pass.NewFunc("semantic.generics", pass.Semantic, []string{"semantic.overload"}, noop)
}

// NewFlowPass is the semantic.flow placeholder, depending on generics.
func NewFlowPass() pass.Pass {
	return pass.NewFunc("semantic.flow", pass.Semantic, []string{"semantic.generics"}, noop)
}

// NewNullabilityPass is the semantic.nullability placeholder, depending on flow.
func NewNullabilityPass() pass.Pass {
	return pass.NewFunc("semantic.nullability", pass.Semantic, []string{"semantic.flow"}, noop)
}

// NewAttributesPass is the semantic.attributes placeholder, depending on nullability.
func NewAttributesPass() pass.Pass {
	return pass.NewFunc("semantic.attributes", pass.Semantic, []string{"semantic.nullability"}, noop)
}

// NewAccessPass is the semantic.access placeholder, depending on attributes.
func NewAccessPass() pass.Pass {
	return pass.NewFunc("semantic.access", pass.Semantic, []string{"semantic.attributes"}, noop)
}

// NewExtensionsPass is the semantic.extensions placeholder, depending on access.
func NewExtensionsPass() pass.Pass {
	return pass.NewFunc("semantic.extensions", pass.Semantic, []string{"semantic.access"}, noop)
}

// Chain returns every semantic-phase pass in dependency order: symbols,
// binding, dependencies, then the placeholder chain through extensions.
func Chain() []pass.Pass {
	return []pass.Pass{
		NewSymbolsPass(),
		NewBindingPass(),
		NewDependenciesPass(),
		NewTypesPass(),
		NewOverloadPass(),
		NewGenericsPass(),
		NewFlowPass(),
		NewNullabilityPass(),
		NewAttributesPass(),
		NewAccessPass(),
		NewExtensionsPass(),
	}
}
