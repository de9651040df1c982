package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/domain"
	domainmocks "ldform.dev/pkg/ldform/internal/domain/mocks"
	m "ldform.dev/pkg/ldform/internal/model"
)

func typesCatalog() *m.Catalog {
	return &m.Catalog{
		Types: []m.SchemaType{
			{
				Name:          "Product",
				Description:   "Product structured data",
				Fields:        []string{"name", "offers.price"},
				Template:      map[string]string{"name": "Mug"},
				TemplateOrder: []string{"name"},
			},
			{Name: "Person", Description: "Person", Fields: []string{"name"}},
		},
	}
}

func TestTypesCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr error
	}{
		{"catalog", []string{"types"}, []string{"Product", "Person", "TOTAL TYPES"}, nil},
		{"one type", []string{"types", "Product"}, []string{"Product: Product structured data", "offers.price", "price", "Template:", "Mug"}, nil},
		{"unknown type", []string{"types", "Widget"}, nil, domain.ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)

			cmd, stdout, _ := newTestRootCmd(t, newTypesCmd())

			originalWorkflow := workflow
			workflow = mockWorkflow
			defer func() { workflow = originalWorkflow }()

			mockWorkflow.On("Catalog").Return(typesCatalog())

			cmd.SetArgs(tt.args)
			err := cmd.Execute()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, strings.ToUpper(stdout.String()), strings.ToUpper(want))
			}
		})
	}
}
