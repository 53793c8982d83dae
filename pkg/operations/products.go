package operations

import (
	"net/http"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

var (
	productColumns = []render.Column{
		{Key: "productId", Label: "ID"},
		{Key: "name", Label: "Name"},
		{Key: "description", Label: "Description"},
		{Key: "price", Label: "Price"},
		{Key: "stock", Label: "Stock"},
		{Key: "categoryId", Label: "Category ID"},
	}
	categoryProductColumns = productColumns[:5]

	productInputs = []Input{
		{Key: "categoryId", Label: "Category ID", Kind: InputNumber},
		{Key: "name", Label: "Name", Kind: InputText},
		{Key: "description", Label: "Description", Kind: InputTextArea},
		{Key: "price", Label: "Price", Kind: InputDecimal},
		{Key: "stock", Label: "Stock", Kind: InputNumber},
		{Key: "sku", Label: "SKU", Kind: InputText},
		{Key: "isActive", Label: "Active", Kind: InputBool},
	}
)

// ProductOperations returns the product catalogue actions.
func ProductOperations() []Operation {
	return []Operation{
		list(Products, "Get All Products", productColumns),
		lookup(Products, "get", "Get Product by ID", idInput("Product ID"), "Please enter a Product ID",
			idPath(Products, ""), cardPresenter("Product #")),
		lookup(Products, "byCategory", "Get Products by Category",
			Input{Key: "categoryId", Label: "Category ID", Kind: InputNumber}, "Please enter a Category ID",
			func(id string) string { return Products.Path() + "/category/" + id },
			tablePresenter(categoryProductColumns)),
		lookup(Products, "stock", "Check Stock", idInput("Product ID"), "Please enter a Product ID",
			idPath(Products, "/stock"),
			func(req Request, value any) render.View {
				return render.NewStockStatus("Product #"+req.Subject+" Stock Status", value)
			}),
		mutation(Products, "create", "Create Product", http.MethodPost, "Product Created",
			productInputs, create(Products, productPayload)),
		mutation(Products, "update", "Update Product", http.MethodPut, "Product Updated",
			withID("Product ID", productInputs), update(Products, "Product ID", "", productPayload)),
		mutation(Products, "updateStock", "Update Stock", http.MethodPut, "Stock Updated",
			withID("Product ID", []Input{{Key: "quantity", Label: "Quantity", Kind: InputNumber}}),
			update(Products, "Product ID", "/stock", stockPayload)),
		mutation(Products, "delete", "Delete Product", http.MethodDelete, "Product Deleted",
			[]Input{idInput("Product ID")}, remove(Products, "Product ID")),
	}
}

func productPayload(src forms.Source) (Request, error) {
	categoryID, err := forms.ParseRequiredInteger(src.Get("categoryId"), "Category ID")
	if err != nil {
		return Request{}, err
	}
	name := forms.Text(src, "name")
	description := forms.Text(src, "description")
	price, err := forms.ParseRequiredNumber(src.Get("price"), "Price")
	if err != nil {
		return Request{}, err
	}
	stock, err := forms.ParseRequiredInteger(src.Get("stock"), "Stock")
	if err != nil {
		return Request{}, err
	}
	sku := forms.Text(src, "sku")
	if name == "" || sku == "" {
		return Request{}, forms.Invalid("name", "Product name and SKU are required")
	}

	payload := apiclient.NewRecord().
		Set("categoryId", categoryID).
		Set("name", name).
		Set("description", description).
		Set("price", price).
		Set("stock", stock).
		Set("sku", sku).
		Set("isActive", forms.Flag(src, "isActive"))
	return Request{Payload: payload}, nil
}

func stockPayload(src forms.Source) (Request, error) {
	quantity, err := forms.ParseRequiredInteger(src.Get("quantity"), "Quantity")
	if err != nil {
		return Request{}, err
	}
	return Request{Payload: apiclient.NewRecord().Set("quantity", quantity)}, nil
}
