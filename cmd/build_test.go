package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/domain"
	domainmocks "ldform.dev/pkg/ldform/internal/domain/mocks"
	m "ldform.dev/pkg/ldform/internal/model"
)

func TestBuildCmd_Document(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, stdout, stderr := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.BuildArgs) bool {
		return args.Type == "Product" &&
			assert.ObjectsAreEqual(m.FieldMap{{Path: "name", Value: "Mug"}, {Path: "offers.price", Value: "9.50"}}, args.Fields) &&
			assert.ObjectsAreEqual([]string{"base.yaml"}, args.FieldFiles) &&
			assert.ObjectsAreEqual([]string{"https://x.test/acme"}, args.SameAs) &&
			args.Pretty &&
			!args.Template
	})).Return(domain.BuildResult{
		JSON:     []byte(`{"@type":"Product"}`),
		Warnings: []domain.Warning{{Field: "image", Message: "bad"}},
	}, nil)

	cmd.SetArgs([]string{
		"build", "--type", "Product",
		"--file", "base.yaml",
		"-f", "name=Mug", "--field", "offers.price=9.50",
		"--same-as", "https://x.test/acme",
	})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, "{\"@type\":\"Product\"}\n", stdout.String())
	assert.Equal(t, "warning: image: bad\n", stderr.String())
	mockWorkflow.AssertExpectations(t)
}

func TestBuildCmd_CompactTemplate(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, _, _ := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Generate", mock.Anything, mock.MatchedBy(func(args domain.BuildArgs) bool {
		return !args.Pretty && args.Template && len(args.Fields) == 0
	})).Return(domain.BuildResult{JSON: []byte(`{}`)}, nil)

	cmd.SetArgs([]string{"generate", "-t", "Article", "--compact", "--template"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestBuildCmd_OutFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, stdout, stderr := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	target := filepath.Join(t.TempDir(), "product.json")

	mockWorkflow.On("Generate", mock.Anything, mock.Anything).Return(domain.BuildResult{
		JSON:     []byte(`{"@type":"Product"}`),
		Warnings: []domain.Warning{{Field: "offers.price", Message: "should be a number"}},
		ETag:     `"abc"`,
	}, nil)

	cmd.SetArgs([]string{"build", "--type", "Product", "--out", target})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{\"@type\":\"Product\"}\n", string(data))

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "warning: offers.price: should be a number")
	assert.Contains(t, stderr.String(), "wrote "+target)
}

func TestBuildCmd_Batch(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, stdout, _ := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	failure := errors.New("b.yaml: boom")

	mockWorkflow.On("GenerateBatch", mock.Anything, mock.MatchedBy(func(args domain.BatchArgs) bool {
		return args.Type == "Product" &&
			args.Pattern == "forms/**/*.yaml" &&
			args.OutDir == "out" &&
			args.Threads == 3 &&
			args.Pretty
	})).Return([]domain.BatchItem{
		{Source: "forms/a.yaml", Output: "out/a.json"},
		{Source: "forms/b.yaml", Err: errors.New("boom")},
	}, failure)

	cmd.SetArgs([]string{"build", "--type", "Product", "--glob", "forms/**/*.yaml", "--out-dir", "out", "-p", "3"})
	err := cmd.Execute()
	require.ErrorIs(t, err, failure)

	assert.Contains(t, stdout.String(), "forms/a.yaml")
	assert.Contains(t, stdout.String(), "out/a.json")
	assert.Contains(t, stdout.String(), "error: boom")
	mockWorkflow.AssertExpectations(t)
}

func TestBuildCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing type", []string{"build", "-f", "name=Mug"}},
		{"invalid field", []string{"build", "-t", "Product", "-f", "name"}},
		{"glob without out dir", []string{"build", "-t", "Product", "--glob", "*.yaml"}},
		{"out dir without glob", []string{"build", "-t", "Product", "--out-dir", "out"}},
		{"glob with fields", []string{"build", "-t", "Product", "--glob", "*.yaml", "--out-dir", "out", "-f", "name=Mug"}},
		{"positional argument", []string{"build", "-t", "Product", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd, _, _ := newTestRootCmd(t, newBuildCmd())

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			cmd.SetArgs(tt.args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestBuildCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd, stdout, _ := newTestRootCmd(t, newBuildCmd())

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Generate", mock.Anything, mock.Anything).Return(domain.BuildResult{}, domain.ErrUnknownType)

	cmd.SetArgs([]string{"build", "--type", "Widget"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrUnknownType)
	assert.Empty(t, stdout.String())
}
