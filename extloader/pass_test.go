package extloader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flanksource/bsharp-analyzer/config"
	"github.com/flanksource/bsharp-analyzer/session"
)

type stubLoader struct {
	types map[string][]TypeSummary
}

func (s stubLoader) Load(path string) (string, []TypeSummary, error) {
	types, ok := s.types[path]
	if !ok {
		return "", nil, errNotConfigured
	}
	return "StubAssembly", types, nil
}

func TestLoaderPassLoadsConfiguredReferences(t *testing.T) {
	cfg := config.Default()
	cfg.PEReferences = []string{"/ref/foo.dll"}

	loader := stubLoader{types: map[string][]TypeSummary{
		"/ref/foo.dll": {{FullName: "Foo.Widget", Assembly: "StubAssembly", Version: "v1.0.0"}},
	}}

	sess := session.New(session.NewContext("a.cs", "", cfg), nil)
	NewLoaderPass(loader, nil).Run(nil, sess)

	idx, ok := session.GetArtifact[*IlTypeIndex](sess)
	require.True(t, ok)
	require.Contains(t, idx.ByFQN, "Foo.Widget")

	assemblies, ok := session.GetArtifact[*ExternalAssemblyIndex](sess)
	require.True(t, ok)
	require.Len(t, assemblies.Assemblies, 1)
}

func TestLoaderPassIsIdempotent(t *testing.T) {
	cfg := config.Default()
	cfg.PEReferences = []string{"/ref/foo.dll"}
	loader := stubLoader{types: map[string][]TypeSummary{
		"/ref/foo.dll": {{FullName: "Foo.Widget", Version: "v1.0.0"}},
	}}

	sess := session.New(session.NewContext("a.cs", "", cfg), nil)
	session.InsertArtifact(sess, &ExternalAssemblyIndex{Assemblies: []AssemblyRecord{{Path: "preexisting"}}})

	NewLoaderPass(loader, nil).Run(nil, sess)

	assemblies, _ := session.GetArtifact[*ExternalAssemblyIndex](sess)
	require.Equal(t, "preexisting", assemblies.Assemblies[0].Path)
}

func TestInsertTypePrefersHigherSemver(t *testing.T) {
	idx := newIlTypeIndex()
	insertType(idx, TypeSummary{FullName: "Foo", Version: "v1.0.0"})
	insertType(idx, TypeSummary{FullName: "Foo", Version: "v2.0.0"})

	require.Equal(t, "v2.0.0", idx.ByFQN["Foo"].Version)
}

func TestInsertTypeKeepsFirstWhenVersionsAreNotSemver(t *testing.T) {
	idx := newIlTypeIndex()
	insertType(idx, TypeSummary{FullName: "Foo", Version: "not-a-version"})
	insertType(idx, TypeSummary{FullName: "Foo", Version: "also-not"})

	require.Equal(t, "not-a-version", idx.ByFQN["Foo"].Version)
}
