// Package operations describes every console action: the inputs it reads, the
// request it builds and how its response is presented.
package operations

import (
	"net/http"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

// Entity is one of the remote API's resource families.
type Entity string

const (
	Products   Entity = "products"
	Orders     Entity = "orders"
	Categories Entity = "categories"
	Users      Entity = "users"
)

// Path is the collection path, e.g. "/api/products".
func (e Entity) Path() string { return "/api/" + string(e) }

// Region is the result region shared by all of the entity's operations.
func (e Entity) Region() string { return string(e) + "Result" }

// Title is the tab label.
func (e Entity) Title() string {
	switch e {
	case Products:
		return "Products"
	case Orders:
		return "Orders"
	case Categories:
		return "Categories"
	case Users:
		return "Users"
	default:
		return string(e)
	}
}

// InputKind selects the form control drawn for an Input.
type InputKind string

const (
	InputText     InputKind = "text"
	InputNumber   InputKind = "number"
	InputDecimal  InputKind = "decimal"
	InputEmail    InputKind = "email"
	InputPassword InputKind = "password"
	InputBool     InputKind = "bool"
	InputTextArea InputKind = "textarea"
)

// Input is one form field.
type Input struct {
	Key         string
	Label       string
	Kind        InputKind
	Placeholder string
}

// Request is the HTTP call an operation resolved to.
type Request struct {
	Method  string
	Path    string
	Payload *apiclient.Record
	// Subject is the id or email echoed in result titles.
	Subject string
}

// Presenter turns a decoded response into a view.
type Presenter func(req Request, value any) render.View

// Operation is a single console action.
type Operation struct {
	ID      string
	Entity  Entity
	Label   string
	Method  string
	Inputs  []Input
	Build   func(src forms.Source) (Request, error)
	Present Presenter
}

// Region returns the id of the result region the operation writes to.
func (o Operation) Region() string { return o.Entity.Region() }

// Mutating reports whether the operation changes remote state.
func (o Operation) Mutating() bool { return o.Method != http.MethodGet }
