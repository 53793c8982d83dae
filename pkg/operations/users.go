package operations

import (
	"net/http"

	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

var (
	userColumns = []render.Column{
		{Key: "userId", Label: "ID"},
		{Key: "username", Label: "Username"},
		{Key: "email", Label: "Email"},
		{Key: "firstName", Label: "First Name"},
		{Key: "lastName", Label: "Last Name"},
		{Key: "createdAt", Label: "Created At"},
	}

	userInputs = []Input{
		{Key: "email", Label: "Email", Kind: InputEmail},
		{Key: "passwordHash", Label: "Password Hash", Kind: InputPassword},
		{Key: "firstName", Label: "First Name", Kind: InputText},
		{Key: "lastName", Label: "Last Name", Kind: InputText},
		{Key: "phone", Label: "Phone", Kind: InputText},
		{Key: "role", Label: "Role", Kind: InputText, Placeholder: "CUSTOMER"},
		{Key: "isActive", Label: "Active", Kind: InputBool},
	}
)

// UserOperations returns the user actions.
func UserOperations() []Operation {
	return []Operation{
		list(Users, "Get All Users", userColumns),
		lookup(Users, "get", "Get User by ID", idInput("User ID"), "Please enter a User ID",
			idPath(Users, ""), cardPresenter("User #")),
		lookup(Users, "byEmail", "Get User by Email",
			Input{Key: "email", Label: "Email", Kind: InputEmail}, "Please enter an email address",
			func(email string) string { return Users.Path() + "/email/" + email },
			cardPresenter("User: ")),
		mutation(Users, "create", "Create User", http.MethodPost, "User Created",
			userInputs, create(Users, userPayload)),
		mutation(Users, "update", "Update User", http.MethodPut, "User Updated",
			withID("User ID", userInputs), update(Users, "User ID", "", userPayload)),
		mutation(Users, "delete", "Delete User", http.MethodDelete, "User Deleted",
			[]Input{idInput("User ID")}, remove(Users, "User ID")),
	}
}

func userPayload(src forms.Source) (Request, error) {
	email := forms.Text(src, "email")
	password := forms.Text(src, "passwordHash")
	first := forms.Text(src, "firstName")
	last := forms.Text(src, "lastName")
	phone := forms.Text(src, "phone")
	role := forms.Text(src, "role")
	if email == "" || password == "" || first == "" || last == "" || role == "" {
		return Request{}, forms.Invalid("email", "Email, password, first name, last name, and role are required")
	}

	payload := apiclient.NewRecord().
		Set("email", email).
		Set("passwordHash", password).
		Set("firstName", first).
		Set("lastName", last).
		Set("phone", phone).
		Set("role", role).
		Set("isActive", forms.Flag(src, "isActive"))
	return Request{Payload: payload}, nil
}
