package rule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConditionEvaluatorDefaultsTrueForUnconfiguredRule(t *testing.T) {
	ce := NewConditionEvaluator(nil, Activation{Severity: "warning", FilePath: "a.cs"})
	require.True(t, ce.Eval("naming.class_pascal_case"))
}

func TestConditionEvaluatorEvaluatesSeverityExpression(t *testing.T) {
	ce := NewConditionEvaluator(map[string]string{
		"naming.class_pascal_case": `severity == "warning"`,
	}, Activation{Severity: "warning", FilePath: "a.cs"})
	require.True(t, ce.Eval("naming.class_pascal_case"))

	ceFalse := NewConditionEvaluator(map[string]string{
		"naming.class_pascal_case": `severity == "error"`,
	}, Activation{Severity: "warning", FilePath: "a.cs"})
	require.False(t, ceFalse.Eval("naming.class_pascal_case"))
}

func TestConditionEvaluatorDegradesToTrueOnMalformedExpression(t *testing.T) {
	ce := NewConditionEvaluator(map[string]string{
		"naming.class_pascal_case": `severity ===`,
	}, Activation{Severity: "warning", FilePath: "a.cs"})
	require.True(t, ce.Eval("naming.class_pascal_case"))
}

func TestConditionEvaluatorMatchesFilePath(t *testing.T) {
	ce := NewConditionEvaluator(map[string]string{
		"naming.class_pascal_case": `file_path == "a.cs"`,
	}, Activation{Severity: "warning", FilePath: "a.cs"})
	require.True(t, ce.Eval("naming.class_pascal_case"))
}
