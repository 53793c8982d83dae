package operations

import (
	"net/http"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

var (
	categoryColumns = []render.Column{
		{Key: "categoryId", Label: "ID"},
		{Key: "name", Label: "Name"},
		{Key: "description", Label: "Description"},
	}

	categoryInputs = []Input{
		{Key: "name", Label: "Name", Kind: InputText},
		{Key: "description", Label: "Description", Kind: InputTextArea},
	}
)

// CategoryOperations returns the category actions.
func CategoryOperations() []Operation {
	return []Operation{
		list(Categories, "Get All Categories", categoryColumns),
		lookup(Categories, "get", "Get Category by ID", idInput("Category ID"), "Please enter a Category ID",
			idPath(Categories, ""), cardPresenter("Category #")),
		mutation(Categories, "create", "Create Category", http.MethodPost, "Category Created",
			categoryInputs, create(Categories, categoryPayload)),
		mutation(Categories, "update", "Update Category", http.MethodPut, "Category Updated",
			withID("Category ID", categoryInputs), update(Categories, "Category ID", "", categoryPayload)),
		mutation(Categories, "delete", "Delete Category", http.MethodDelete, "Category Deleted",
			[]Input{idInput("Category ID")}, remove(Categories, "Category ID")),
	}
}

func categoryPayload(src forms.Source) (Request, error) {
	name := forms.Text(src, "name")
	description := forms.Text(src, "description")
	if name == "" {
		return Request{}, forms.Invalid("name", "Category name is required")
	}
	return Request{Payload: apiclient.NewRecord().Set("name", name).Set("description", description)}, nil
}
