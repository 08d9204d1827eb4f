package validate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
)

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	validateOptions = RunOptionsValidate{}
	cmd := NewValidateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandAcceptsKnownVectors(t *testing.T) {
	out, err := runValidate(t, "4006381333931", "96385074", "036000291452")
	require.NoError(t, err)
	assert.Contains(t, out, "4006381333931\tvalid\tEAN-13")
	assert.Contains(t, out, "96385074\tvalid\tEAN-8")
	assert.Contains(t, out, "036000291452\tvalid\tUPC-A")
}

func TestValidateCommandFlagsBadChecksum(t *testing.T) {
	out, err := runValidate(t, "4006381333932")
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "checksum-mismatch")

	var cmdErr *sharederrors.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, sharederrors.ExitInvalidInput, cmdErr.ExitCode)
}

func TestValidateCommandJSONOutput(t *testing.T) {
	out, err := runValidate(t, "--json", "96385074")
	require.NoError(t, err)

	var reports []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "96385074", reports[0]["input"])

	result, ok := reports[0]["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "EAN-8", result["symbology"])
}
