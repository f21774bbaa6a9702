package pass

import (
	"fmt"

	"github.com/flanksource/bsharp-analyzer/diagnostic"
	"github.com/flanksource/bsharp-analyzer/session"
)

func emitInternalError(sess *session.Session, sourceID string, r any) {
	diagnostic.New(diagnostic.CodeInternalError).
		WithMessage(fmt.Sprintf("pass %q panicked: %v", sourceID, r)).
		Emit(sess)
}
