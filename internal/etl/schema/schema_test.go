package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	statements []string
	failOn     int
}

func (f *fakeWriter) Write(ctx context.Context, cypher string, params map[string]any) error {
	f.statements = append(f.statements, cypher)
	if f.failOn > 0 && len(f.statements) == f.failOn {
		return errors.New("syntax error")
	}
	return nil
}

func TestBootstrapAppliesEveryStatement(t *testing.T) {
	w := &fakeWriter{}
	require.NoError(t, Bootstrap(context.Background(), w))
	assert.Len(t, w.statements, len(Statements))
	assert.Equal(t, Statements[0], w.statements[0])
}

func TestBootstrapFailureIsFatal(t *testing.T) {
	w := &fakeWriter{failOn: 3}
	err := Bootstrap(context.Background(), w)
	require.Error(t, err)
	assert.Len(t, w.statements, 3, "stops at first failure")
}
