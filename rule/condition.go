package rule

import (
	"github.com/google/cel-go/cel"

	"github.com/flanksource/commons/logger"
)

// Activation is the variable set a rule condition expression can reference,
// built once per session (SPEC_FULL.md §4.13).
type Activation struct {
	Severity string
	FilePath string
}

func (a Activation) asMap() map[string]any {
	return map[string]any{
		"severity":  a.Severity,
		"file_path": a.FilePath,
	}
}

// ConditionEvaluator compiles each configured CEL expression once and
// evaluates it per rule id against a shared activation.
type ConditionEvaluator struct {
	env        *cel.Env
	programs   map[string]cel.Program
	activation map[string]any
}

// NewConditionEvaluator compiles every expression in conditions, silently
// dropping (with a debug log) any that fail to compile — a malformed rule
// condition degrades to "rule always runs", not a pipeline failure.
func NewConditionEvaluator(conditions map[string]string, act Activation) *ConditionEvaluator {
	env, err := cel.NewEnv(
		cel.Variable("severity", cel.StringType),
		cel.Variable("file_path", cel.StringType),
	)
	ce := &ConditionEvaluator{programs: map[string]cel.Program{}, activation: act.asMap()}
	if err != nil {
		logger.Debugf("cel: failed to build environment: %v", err)
		return ce
	}
	ce.env = env

	for ruleID, expr := range conditions {
		ast, issues := env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			logger.Debugf("cel: rule %q condition %q failed to compile: %v", ruleID, expr, issues.Err())
			continue
		}
		prg, err := env.Program(ast)
		if err != nil {
			logger.Debugf("cel: rule %q condition %q failed to build program: %v", ruleID, expr, err)
			continue
		}
		ce.programs[ruleID] = prg
	}
	return ce
}

// Eval reports whether ruleID's condition holds. A rule with no configured
// condition always evaluates to true.
func (ce *ConditionEvaluator) Eval(ruleID string) bool {
	prg, ok := ce.programs[ruleID]
	if !ok {
		return true
	}
	out, _, err := prg.Eval(ce.activation)
	if err != nil {
		logger.Debugf("cel: rule %q condition evaluation error: %v", ruleID, err)
		return true
	}
	if b, ok := out.Value().(bool); ok {
		return b
	}
	return true
}
