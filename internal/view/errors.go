// Package view implements the generic schema-driven view models
// shared by both applications: the list view, the form view and
// the relations drill-down. Views fetch through the api client and
// gate mutations through the permission table; they never touch
// the session directly.
package view

import "errors"

// ErrPermissionDenied is a client-side gate rejection. It is never
// sent to the network; handlers surface it as a blocking message
// and abort the action.
var ErrPermissionDenied = errors.New("bạn không có quyền thực hiện thao tác này")

// ErrBusy rejects an operation while the same operation is still
// outstanding. A second trigger must not reissue a request; the
// caller simply ignores the interaction.
var ErrBusy = errors.New("thao tác đang được xử lý")
