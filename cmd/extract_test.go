package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/domain"
	domainmocks "ldform.dev/pkg/ldform/internal/domain/mocks"
	m "ldform.dev/pkg/ldform/internal/model"
)

func TestExtractCmd(t *testing.T) {
	tests := []struct {
		name       string
		values     bool
		wantStderr string
	}{
		{"fields only", false, ""},
		{"with values file", true, "wrote 2 values to "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd, stdout, stderr := newTestRootCmd(t, newExtractCmd())

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			dir := writeDocuments(t, map[string]string{"doc.json": `{"name":"Mug","offers":{"price":9.5}}`})
			valuesPath := ""
			args := []string{"extract", filepath.Join(dir, "doc.json")}

			if tt.values {
				valuesPath = filepath.Join(dir, "values.yaml")
				args = append(args, "--values", valuesPath)
			}

			mockWorkflow.On("Extract", mock.Anything, mock.MatchedBy(func(args domain.ExtractArgs) bool {
				return string(args.Document) == `{"name":"Mug","offers":{"price":9.5}}` && args.ValuesFile == valuesPath
			})).Return(domain.ExtractResult{
				Fields: []string{"name", "offers", "offers.price"},
				Values: m.FieldMap{{Path: "name", Value: "Mug"}, {Path: "offers.price", Value: 9.5}},
			}, nil)

			cmd.SetArgs(args)
			require.NoError(t, cmd.Execute())

			assert.Equal(t, "name\noffers\noffers.price\n", stdout.String())

			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr+valuesPath)
			}

			mockWorkflow.AssertExpectations(t)
		})
	}
}

func TestExtractCmd_InvalidDocument(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newExtractCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	dir := writeDocuments(t, map[string]string{"doc.json": `[1]`})

	mockWorkflow.On("Extract", mock.Anything, mock.Anything).Return(domain.ExtractResult{}, domain.ErrInvalidDocument)

	cmd.SetArgs([]string{"extract", filepath.Join(dir, "doc.json")})
	require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidDocument)
}
