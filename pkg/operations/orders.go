package operations

import (
	"net/http"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

var (
	orderColumns = []render.Column{
		{Key: "orderId", Label: "Order ID"},
		{Key: "userId", Label: "User ID"},
		{Key: "orderDate", Label: "Order Date"},
		{Key: "status", Label: "Status"},
		{Key: "totalAmount", Label: "Total Amount"},
	}
	userOrderColumns = []render.Column{
		{Key: "orderId", Label: "Order ID"},
		{Key: "orderDate", Label: "Order Date"},
		{Key: "status", Label: "Status"},
		{Key: "totalAmount", Label: "Total Amount"},
	}

	userIDInput = Input{Key: "userId", Label: "User ID", Kind: InputNumber}

	orderInputs = []Input{
		userIDInput,
		{Key: "orderNumber", Label: "Order Number", Kind: InputText},
		{Key: "status", Label: "Status", Kind: InputText, Placeholder: "PENDING"},
		{Key: "totalAmount", Label: "Total Amount", Kind: InputDecimal},
		{Key: "shippingAddressId", Label: "Shipping Address ID", Kind: InputNumber, Placeholder: "optional"},
		{Key: "billingAddressId", Label: "Billing Address ID", Kind: InputNumber, Placeholder: "optional"},
		{Key: "notes", Label: "Notes", Kind: InputTextArea},
	}
)

// OrderOperations returns the order actions.
func OrderOperations() []Operation {
	return []Operation{
		list(Orders, "Get All Orders", orderColumns),
		lookup(Orders, "get", "Get Order by ID", idInput("Order ID"), "Please enter an Order ID",
			idPath(Orders, ""), cardPresenter("Order #")),
		lookup(Orders, "byUser", "Get Orders by User", userIDInput, "Please enter a User ID",
			func(id string) string { return Orders.Path() + "/user/" + id },
			tablePresenter(userOrderColumns)),
		lookup(Orders, "userCount", "User Order Count", userIDInput, "Please enter a User ID",
			func(id string) string { return Orders.Path() + "/user/" + id + "/count" },
			func(req Request, value any) render.View {
				return render.NewCount("User #"+req.Subject+" Order Count", value)
			}),
		mutation(Orders, "create", "Create Order", http.MethodPost, "Order Created",
			orderInputs, create(Orders, orderPayload)),
		mutation(Orders, "update", "Update Order", http.MethodPut, "Order Updated",
			withID("Order ID", orderInputs), update(Orders, "Order ID", "", orderPayload)),
		mutation(Orders, "updateStatus", "Update Order Status", http.MethodPut, "Order Status Updated",
			withID("Order ID", []Input{{Key: "status", Label: "Status", Kind: InputText, Placeholder: "SHIPPED"}}),
			update(Orders, "Order ID", "/status", statusPayload)),
		mutation(Orders, "delete", "Delete Order", http.MethodDelete, "Order Deleted",
			[]Input{idInput("Order ID")}, remove(Orders, "Order ID")),
	}
}

func orderPayload(src forms.Source) (Request, error) {
	userID, err := forms.ParseRequiredInteger(src.Get("userId"), "User ID")
	if err != nil {
		return Request{}, err
	}
	orderNumber := forms.Text(src, "orderNumber")
	status := forms.Text(src, "status")
	total, err := forms.ParseRequiredNumber(src.Get("totalAmount"), "Total amount")
	if err != nil {
		return Request{}, err
	}
	shipping, err := forms.OptionalInteger(src, "shippingAddressId", "Shipping Address ID")
	if err != nil {
		return Request{}, err
	}
	billing, err := forms.OptionalInteger(src, "billingAddressId", "Billing Address ID")
	if err != nil {
		return Request{}, err
	}
	notes := forms.Text(src, "notes")
	if orderNumber == "" || status == "" {
		return Request{}, forms.Invalid("orderNumber", "Order number and status are required")
	}

	payload := apiclient.NewRecord().
		Set("userId", userID).
		Set("orderNumber", orderNumber).
		Set("status", status).
		Set("totalAmount", total).
		Set("shippingAddressId", shipping).
		Set("billingAddressId", billing).
		Set("notes", notes)
	return Request{Payload: payload}, nil
}

func statusPayload(src forms.Source) (Request, error) {
	status := forms.Text(src, "status")
	if status == "" {
		return Request{}, forms.Invalid("status", "Order status is required")
	}
	return Request{Payload: apiclient.NewRecord().Set("status", status)}, nil
}
