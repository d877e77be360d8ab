package view

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/permission"
	"github.com/minhvo/retail-suite/internal/registry"
	"github.com/minhvo/retail-suite/internal/schema"
)

// ListView fetches a resource's collection and renders it as a
// grid with inferred columns, row selection and row actions. One
// instance serves one resource; switching resources means a fresh
// instance. The selection set only spans one loaded record set:
// any Load that replaces the records clears it.
type ListView struct {
	client   *api.Client
	desc     registry.Descriptor
	position string // staff position; "" disables the gate (storefront)
	gated    bool

	mu        sync.Mutex
	records   []model.Record
	columns   []string
	selection map[string]struct{}
	seq       uint64 // most recently issued fetch
	inflight  bool
	filters   api.Filters // filters of the outstanding fetch
}

// NewListView builds a console list view gated on position.
func NewListView(client *api.Client, desc registry.Descriptor, position string) *ListView {
	return &ListView{
		client:    client,
		desc:      desc,
		position:  position,
		gated:     true,
		selection: make(map[string]struct{}),
	}
}

// NewUngatedListView builds a storefront list view; the storefront
// has no permission table, customers browse freely.
func NewUngatedListView(client *api.Client, desc registry.Descriptor) *ListView {
	return &ListView{
		client:    client,
		desc:      desc,
		selection: make(map[string]struct{}),
	}
}

// Load fetches the collection. It requires view permission when
// gated. On success the current record set is replaced and the
// selection set is cleared; on failure both stay in place, there
// is no partial merge. Re-issuing the same fetch while one is
// outstanding returns ErrBusy without touching the network; a
// fetch with different filters supersedes the outstanding one,
// whose response is then discarded so stale data cannot overwrite
// newer data.
func (v *ListView) Load(ctx context.Context, f api.Filters, token string) error {
	if v.gated && !permission.Can(v.position, v.desc.Name, permission.ActionView) {
		return ErrPermissionDenied
	}

	v.mu.Lock()
	if v.inflight && f == v.filters {
		v.mu.Unlock()
		return ErrBusy
	}
	v.inflight = true
	v.filters = f
	v.seq++
	seq := v.seq
	v.mu.Unlock()

	records, columns, err := v.client.List(ctx, v.desc, f, token)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq == v.seq {
		v.inflight = false
	}
	if err != nil {
		return err
	}
	if seq != v.seq {
		// a newer fetch has been issued since; most recent wins
		return nil
	}
	v.records = records
	v.columns = columns
	v.selection = make(map[string]struct{})
	return nil
}

// Records returns the loaded record set.
func (v *ListView) Records() []model.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.records
}

// Columns returns the inferred column order, nil when the set is
// empty.
func (v *ListView) Columns() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.columns
}

// Column is one rendered table column.
type Column struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Row is one rendered table row.
type Row struct {
	Key      string   `json:"key"`
	Cells    []string `json:"cells"`
	Selected bool     `json:"selected"`
}

// Table is the list view's rendered state: what a browser needs to
// draw the grid.
type Table struct {
	Resource    string              `json:"resource"`
	Label       string              `json:"label"`
	Columns     []Column            `json:"columns"`
	Rows        []Row               `json:"rows"`
	Empty       bool                `json:"empty"`
	AllSelected bool                `json:"allSelected"`
	Actions     []permission.Action `json:"actions,omitempty"`
}

// Table renders the current record set. An empty set renders an
// explicit empty state; columns are never inferred from it.
func (v *ListView) Table() Table {
	v.mu.Lock()
	defer v.mu.Unlock()
	t := Table{Resource: v.desc.Name, Label: v.desc.Label}
	if v.gated {
		t.Actions = permission.ActionsFor(v.position, v.desc.Name)
	}
	if len(v.records) == 0 {
		t.Empty = true
		return t
	}
	for _, c := range v.columns {
		t.Columns = append(t.Columns, Column{Name: c, Label: schema.Label(c)})
	}
	for _, rec := range v.records {
		key := rec.PrimaryKey(v.columns)
		_, selected := v.selection[key]
		row := Row{Key: key, Selected: selected}
		for _, c := range v.columns {
			row.Cells = append(row.Cells, schema.FormatCell(c, rec[c]))
		}
		t.Rows = append(t.Rows, row)
	}
	t.AllSelected = len(v.selection) == len(v.records)
	return t
}

// Select toggles one record's membership in the selection set.
func (v *ListView) Select(key string, selected bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if selected {
		v.selection[key] = struct{}{}
	} else {
		delete(v.selection, key)
	}
}

// SelectAll selects or deselects every currently loaded record.
func (v *ListView) SelectAll(selected bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = make(map[string]struct{})
	if !selected {
		return
	}
	for _, rec := range v.records {
		v.selection[rec.PrimaryKey(v.columns)] = struct{}{}
	}
}

// Selected returns the selected keys in a stable order.
func (v *ListView) Selected() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	keys := make([]string, 0, len(v.selection))
	for k := range v.selection {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Find returns the loaded record with the given primary key.
func (v *ListView) Find(key string) (model.Record, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, rec := range v.records {
		if rec.PrimaryKey(v.columns) == key {
			return rec, true
		}
	}
	return nil, false
}

// Delete removes one record by primary key. The caller confirms
// with the operator first and reloads the list afterwards.
func (v *ListView) Delete(ctx context.Context, key, token string) error {
	if v.gated && !permission.Can(v.position, v.desc.Name, permission.ActionDelete) {
		return ErrPermissionDenied
	}
	return v.client.Delete(ctx, v.desc, key, token)
}

// DeleteSelected removes every selected record, one request per
// key, sequentially and best-effort: a failure on one key is
// logged and does not stop the remaining keys. The selection is
// cleared once all attempts complete, regardless of individual
// outcomes; the caller then reloads the list.
func (v *ListView) DeleteSelected(ctx context.Context, token string) error {
	if v.gated && !permission.Can(v.position, v.desc.Name, permission.ActionDelete) {
		return ErrPermissionDenied
	}
	keys := v.Selected()
	for _, key := range keys {
		if err := v.client.Delete(ctx, v.desc, key, token); err != nil {
			log.Printf("list: delete %s/%s failed: %v", v.desc.Name, key, err)
		}
	}
	v.mu.Lock()
	v.selection = make(map[string]struct{})
	v.mu.Unlock()
	return nil
}
