package view

import (
	"context"
	"strings"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/permission"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/schema"
)

// FormMode distinguishes create from edit submissions.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeEdit   FormMode = "edit"
)

// FormView holds a draft record while a form is open. The draft is
// discarded on cancel and submitted then discarded on save; it is
// always a copy, never the listed record itself.
type FormView struct {
	client    *api.Client
	desc      registry.Descriptor
	position  string
	gated     bool
	gateName  string // resource the permission gate checks; the parent for child forms
	mode      FormMode
	drilldown bool // child form opened from a relations table
	draft     model.Record
	order     []string
}

// NewCreateForm opens a creation form. When the listing already
// has records their field set (blanked) is the draft skeleton;
// otherwise the resource's static default schema is used.
func NewCreateForm(client *api.Client, desc registry.Descriptor, position string, gated bool, columns []string) *FormView {
	draft := model.Record{}
	var order []string
	if len(columns) > 0 {
		for _, c := range columns {
			draft[c] = ""
			order = append(order, c)
		}
	} else {
		for _, fd := range schema.Fields(desc.Name, nil) {
			draft[fd.Name] = fd.Default
			order = append(order, fd.Name)
		}
	}
	return &FormView{
		client:   client,
		desc:     desc,
		position: position,
		gated:    gated,
		gateName: desc.Name,
		mode:     ModeCreate,
		draft:    draft,
		order:    order,
	}
}

// NewEditForm opens an edit form over an existing record.
// drilldown marks child forms opened from a relations table, where
// key fields are read-only because the child's identity derives
// from the parent context.
func NewEditForm(client *api.Client, desc registry.Descriptor, position string, gated bool, rec model.Record, columns []string, drilldown bool) *FormView {
	order := columns
	if len(order) == 0 {
		for _, fd := range schema.Fields(desc.Name, nil) {
			if _, ok := rec[fd.Name]; ok {
				order = append(order, fd.Name)
			}
		}
		for k := range rec {
			found := false
			for _, o := range order {
				if o == k {
					found = true
					break
				}
			}
			if !found {
				order = append(order, k)
			}
		}
	}
	return &FormView{
		client:    client,
		desc:      desc,
		position:  position,
		gated:     gated,
		gateName:  desc.Name,
		mode:      ModeEdit,
		drilldown: drilldown,
		draft:     rec.Clone(),
		order:     order,
	}
}

// Mode returns the form's mode.
func (f *FormView) Mode() FormMode { return f.mode }

// Draft returns the current draft record.
func (f *FormView) Draft() model.Record { return f.draft }

// FormField is one rendered input.
type FormField struct {
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Widget   schema.Widget `json:"widget"`
	Options  []string      `json:"options,omitempty"`
	ReadOnly bool          `json:"readOnly,omitempty"`
	Value    any           `json:"value"`
}

// Fields lists the editable inputs in field order. System-assigned
// date stamps are dropped entirely; key fields render read-only in
// drill-down edit forms but stay editable at the top level, where
// the operator may assign keys at creation time.
func (f *FormView) Fields() []FormField {
	out := make([]FormField, 0, len(f.order))
	for _, name := range f.order {
		if schema.IsHiddenField(name) {
			continue
		}
		readOnly := false
		if f.drilldown && f.mode == ModeEdit && schema.IsKeyField(name) {
			readOnly = true
		}
		ff := FormField{
			Name:     name,
			Label:    schema.Label(name),
			Widget:   schema.InferWidget(name),
			ReadOnly: readOnly,
			Value:    f.draft[name],
		}
		if ff.Widget == schema.WidgetSelect {
			ff.Options = registry.SelectOptions(name)
		}
		out = append(out, ff)
	}
	return out
}

// Set writes one field of the draft. Hidden fields and read-only
// key fields are ignored rather than erroring, matching how a
// rendered form simply does not offer them.
func (f *FormView) Set(name string, value any) {
	if schema.IsHiddenField(name) {
		return
	}
	if f.drilldown && f.mode == ModeEdit && schema.IsKeyField(name) {
		return
	}
	if _, ok := f.draft[name]; !ok {
		return
	}
	f.draft[name] = value
}

// Apply writes several draft fields at once.
func (f *FormView) Apply(values map[string]any) {
	for k, v := range values {
		f.Set(k, v)
	}
}

// primaryKeyValue finds the draft's primary-key value, matching
// the descriptor's key field case-insensitively the way the
// backend's records sometimes differ in casing.
func (f *FormView) primaryKeyValue(coerced model.Record) string {
	want := strings.ToLower(f.desc.PrimaryKey)
	for k := range coerced {
		if strings.ToLower(k) == want {
			return model.Record(coerced).String(k)
		}
	}
	return ""
}

// Submit validates permission, coerces numeric fields and sends
// the draft: PUT to the collection endpoint plus the primary key
// for edit, POST to the bare collection endpoint for create. On
// success the caller closes the form and reloads the list; the
// list is never patched locally, so displayed state always matches
// server truth. A ValidationError keeps the draft intact for
// correction and resubmission.
func (f *FormView) Submit(ctx context.Context, token string) error {
	if f.gated {
		action := permission.ActionCreate
		if f.mode == ModeEdit {
			action = permission.ActionEdit
		}
		if !permission.Can(f.position, f.gateName, action) {
			return ErrPermissionDenied
		}
	}
	payload := model.Record(schema.CoerceNumbers(f.draft))
	if f.mode == ModeEdit {
		id := f.primaryKeyValue(payload)
		return f.client.Update(ctx, f.desc, id, payload, token)
	}
	return f.client.Create(ctx, f.desc, payload, token)
}
