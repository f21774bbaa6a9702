package rule

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func emitRuleInternalError(sess *session.Session, ruleID string, r any) {
	diagnostic.New(diagnostic.CodeInternalError).
		WithMessage(fmt.Sprintf("rule %q panicked: %v", ruleID, r)).
		Emit(sess)
}
