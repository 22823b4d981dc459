package report

import (
	"github.com/harrison/skilllint/internal/models"
)

// ExitPolicy decides the process exit code from a finished scan. The
// default (non-strict) policy always exits zero; strict mode blocks on
// errors, and on warnings too when FailOn is lowered to WARNING. The
// warning threshold is a configuration choice, not a hardcoded default.
type ExitPolicy struct {
	// Strict enables CI gating. When false ExitCode is always 0.
	Strict bool
	// FailOn is the lowest severity that blocks in strict mode.
	FailOn models.Severity
}

// ExitCode returns 0 when the run passes the active policy, 1 otherwise.
func (p ExitPolicy) ExitCode(corpus *models.CorpusReport) int {
	if !p.Strict {
		return 0
	}
	if corpus.HasBlocking(p.FailOn) {
		return 1
	}
	return 0
}
