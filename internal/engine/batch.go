package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"localdb/internal/sql"
)

// ErrUnknownCode means Exec was called with a code no batch was registered
// under on this handle. Codes are process-local and do not survive a reload.
var ErrUnknownCode = errors.New("unknown batch code")

// AddLines parses every line eagerly, in order, and registers the resulting
// statement sequence under a freshly minted code. Registration is
// all-or-nothing: the first parse failure is returned and nothing is
// registered. Codes are never evicted, so a registered batch can be
// replayed with Exec for as long as the handle lives.
func (e *Engine) AddLines(lines []string) (string, error) {
	stmts := make([]sql.Statement, 0, len(lines))
	for i, line := range lines {
		stmt, err := sql.Parse(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		stmts = append(stmts, stmt)
	}

	code := uuid.NewString()
	e.batches[code] = stmts
	return code, nil
}

// Exec runs every statement registered under code, in registration order.
// The first failure aborts the remaining statements; statements applied
// before the failure stay applied — there is no rollback. after, if
// non-nil, runs once per applied statement (the database handle uses it to
// persist between statements) and its error aborts the batch the same way.
func (e *Engine) Exec(code string, after func() error) error {
	stmts, ok := e.batches[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}

	for i, stmt := range stmts {
		if err := e.Execute(stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
		if after != nil {
			if err := after(); err != nil {
				return fmt.Errorf("statement %d: %w", i+1, err)
			}
		}
	}
	return nil
}
