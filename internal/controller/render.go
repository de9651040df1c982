package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

const identicalMessage = "Documents are identical."

var valueCodec = adapter.NewJSONCodec(0)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func renderCatalogTable(catalog *m.Catalog) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Type", "Description", "Example fields"})
	for _, st := range catalog.Types {
		table.Append([]string{st.Name, st.Description, strings.Join(st.Example, ", ")})
	}

	table.SetFooter([]string{fmt.Sprintf("Total types %d", len(catalog.Types)), "", ""})
	table.Render()

	return buf.String()
}

func renderSchemaType(st m.SchemaType) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s: %s\n\n", st.Name, st.Description)

	fields := newTable(&buf, []string{"Field", "Input"})
	for _, path := range st.Fields {
		fields.Append([]string{path, string(m.InputFor(path))})
	}

	fields.Render()

	template := st.TemplateFields()
	if len(template) == 0 {
		return buf.String()
	}

	buf.WriteString("\nTemplate:\n")

	values := newTable(&buf, []string{"Field", "Value"})
	for _, field := range template {
		values.Append([]string{field.Path, m.ScalarText(field.Value)})
	}

	values.Render()

	return buf.String()
}

func renderUsersTable(users []m.User) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"User", "Admin", "Created"})
	for _, user := range users {
		created := "-"
		if !user.CreatedAt.IsZero() {
			created = user.CreatedAt.UTC().Format(time.DateTime)
		}

		admin := "no"
		if user.Admin {
			admin = "yes"
		}

		table.Append([]string{user.Name, admin, created})
	}

	table.SetFooter([]string{fmt.Sprintf("Total users %d", len(users)), "", ""})
	table.Render()

	return buf.String()
}

func renderBatchTable(items []domain.BatchItem) string {
	var buf bytes.Buffer

	failed := 0

	table := newTable(&buf, []string{"Source", "Output", "Status"})
	for _, item := range items {
		status := "ok"

		switch {
		case item.Err != nil:
			status = "error: " + item.Err.Error()
			failed++
		case len(item.Warnings) > 0:
			status = fmt.Sprintf("%d warning(s)", len(item.Warnings))
		}

		table.Append([]string{item.Source, item.Output, status})
	}

	table.SetFooter([]string{fmt.Sprintf("Total files %d", len(items)), "", fmt.Sprintf("Failed %d", failed)})
	table.Render()

	return buf.String()
}

func diffLabel(kind m.DiffKind) string {
	switch kind {
	case m.OnlyInA:
		return "only in A"
	case m.OnlyInB:
		return "only in B"
	case m.ValueChanged:
		return "changed"
	case m.ListLengthChanged:
		return "list length"
	case m.ListElementChanged:
		return "list element"
	default:
		return kind.String()
	}
}

func formatValue(node m.Node) string {
	if node == nil {
		return ""
	}

	data, err := valueCodec.Encode(node, false)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}

	return string(data)
}

func renderDiffTable(result domain.CompareResult) string {
	if result.Identical {
		return identicalMessage + "\n"
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Change", "Path", "A", "B"})
	for _, record := range result.Differences {
		a, b := formatValue(record.A), formatValue(record.B)
		if record.Kind == m.ListLengthChanged {
			a, b = fmt.Sprintf("%d items", record.LenA), fmt.Sprintf("%d items", record.LenB)
		}

		table.Append([]string{diffLabel(record.Kind), record.Location(), a, b})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Differences %d", len(result.Differences)),
		fmt.Sprintf("Common paths %d", len(result.Common)),
		"", "",
	})
	table.Render()

	return buf.String()
}

func renderFields(fields []string) string {
	if len(fields) == 0 {
		return ""
	}

	return strings.Join(fields, "\n") + "\n"
}
