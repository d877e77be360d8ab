package view

import (
	"context"
	"time"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/schema"
)

// RelationsTable is the rendered drill-down of a parent record's
// children, using the relation's explicit column template instead
// of key inference.
type RelationsTable struct {
	Parent   string   `json:"parent"`
	Child    string   `json:"child"`
	Columns  []Column `json:"columns"`
	Rows     []Row    `json:"rows"`
	Records  []model.Record
}

// RelationsResult is either a child table or, when the child
// collection is empty, the parent's own edit form: an empty
// relation most often means the operator actually wants to edit
// the parent record.
type RelationsResult struct {
	Table    *RelationsTable
	Fallback *FormView
}

// LoadRelations resolves the per-resource child-fetch rule,
// fetches the dependent collection scoped to the parent's key and
// renders it with the relation's column template. Resources
// without a relation rule fall back to the parent edit form
// immediately.
func LoadRelations(ctx context.Context, client *api.Client, desc registry.Descriptor, position string, gated bool, parent model.Record, parentColumns []string, token string) (RelationsResult, error) {
	rel, ok := registry.RelationFor(desc.Name)
	if !ok {
		return RelationsResult{
			Fallback: NewEditForm(client, desc, position, gated, parent, parentColumns, false),
		}, nil
	}

	parentKey := parent.String(desc.PrimaryKey)
	children, _, err := client.Relations(ctx, rel, parentKey, token)
	if err != nil {
		return RelationsResult{}, err
	}
	if len(children) == 0 {
		return RelationsResult{
			Fallback: NewEditForm(client, desc, position, gated, parent, parentColumns, false),
		}, nil
	}

	t := &RelationsTable{Parent: desc.Name, Child: rel.Child, Records: children}
	for _, col := range rel.Columns {
		t.Columns = append(t.Columns, Column{Name: col.Key, Label: col.Label})
	}
	if rel.Extension != nil {
		t.Columns = append(t.Columns, Column{Name: "_ext", Label: rel.Extension.Label})
	}
	for _, rec := range children {
		// rows are keyed by the line-identity field; the child's
		// primary key is the update key and repeats across lines
		row := Row{Key: rec.String(rel.RowKey)}
		for _, col := range rel.Columns {
			row.Cells = append(row.Cells, relationCell(col, rec))
		}
		if rel.Extension != nil {
			row.Cells = append(row.Cells, rel.Extension.Compute(rec))
		}
		t.Rows = append(t.Rows, row)
	}
	return RelationsResult{Table: t}, nil
}

// EditChild opens the form view for one child row, against the
// child resource's own descriptor. Key fields are read-only: a
// child record derives its identity from the parent context. The
// permission gate checks the parent resource, since child rows are
// only reachable through the parent's screen.
func EditChild(client *api.Client, childResource, position string, gated bool, rec model.Record) (*FormView, error) {
	childDesc, err := registry.Describe(childResource)
	if err != nil {
		return nil, err
	}
	f := NewEditForm(client, childDesc, position, gated, rec, nil, true)
	if parent, ok := registry.ParentOf(childResource); ok {
		f.gateName = parent
	}
	return f, nil
}

func relationCell(col registry.RelationColumn, rec model.Record) string {
	v := rec[col.Key]
	if col.Currency {
		s := schema.FormatCurrency(v)
		if s == "" {
			return ""
		}
		return s + schema.CurrencySuffix
	}
	if col.Date {
		return formatDate(v)
	}
	return schema.FormatCell(col.Key, v)
}

// dateLayouts are the formats backend date strings arrive in.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatDate renders a backend date value as dd/mm/yyyy; values
// that do not parse pass through unchanged.
func formatDate(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}
