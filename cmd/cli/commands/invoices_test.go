package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceCommandFlagValidation(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expectedError string
	}{
		{
			name:          "generate without project id",
			args:          []string{"invoices", "generate"},
			expectedError: `required flag(s) "project-id" not set`,
		},
		{
			name:          "get without id",
			args:          []string{"invoices", "get"},
			expectedError: `required flag(s) "id" not set`,
		},
		{
			name:          "update without status",
			args:          []string{"invoices", "update", "--id", "1"},
			expectedError: `required flag(s) "status" not set`,
		},
		{
			name:          "download without id",
			args:          []string{"invoices", "download"},
			expectedError: `required flag(s) "id" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RootCmd.SetArgs(tt.args)
			err := RootCmd.Execute()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestRootCommandRejectsBadEnvironment(t *testing.T) {
	t.Run("invalid owner id env var", func(t *testing.T) {
		t.Setenv(envOwnerID, "not-a-number")

		RootCmd.SetArgs([]string{"invoices", "list"})
		err := RootCmd.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), envOwnerID)
	})

	// Runs last: setting the flag marks it changed for the rest of the process.
	t.Run("empty server address", func(t *testing.T) {
		RootCmd.SetArgs([]string{"invoices", "list", "--server-address", ""})
		err := RootCmd.Execute()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "server address cannot be empty")
	})
}
