package operations

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

func opID(e Entity, name string) string { return string(e) + "." + name }

// list builds a parameterless GET of the collection rendered as a table.
func list(e Entity, label string, columns []render.Column) Operation {
	return Operation{
		ID:     opID(e, "list"),
		Entity: e,
		Label:  label,
		Method: http.MethodGet,
		Build: func(forms.Source) (Request, error) {
			return Request{Method: http.MethodGet, Path: e.Path()}, nil
		},
		Present: tablePresenter(columns),
	}
}

// lookup builds a GET keyed by one operator value. A blank value fails with prompt.
func lookup(e Entity, name, label string, in Input, prompt string, path func(param string) string, present Presenter) Operation {
	return Operation{
		ID:     opID(e, name),
		Entity: e,
		Label:  label,
		Method: http.MethodGet,
		Inputs: []Input{in},
		Build: func(src forms.Source) (Request, error) {
			v := forms.Text(src, in.Key)
			if v == "" {
				return Request{}, forms.Invalid(in.Label, prompt)
			}
			return Request{Method: http.MethodGet, Path: path(url.PathEscape(v)), Subject: v}, nil
		},
		Present: present,
	}
}

// mutation builds a create, update or delete whose response is shown under title.
func mutation(e Entity, name, label, method, title string, inputs []Input, build func(forms.Source) (Request, error)) Operation {
	return Operation{
		ID:     opID(e, name),
		Entity: e,
		Label:  label,
		Method: method,
		Inputs: inputs,
		Build: func(src forms.Source) (Request, error) {
			req, err := build(src)
			if err != nil {
				return Request{}, err
			}
			req.Method = method
			return req, nil
		},
		Present: func(_ Request, value any) render.View {
			return render.NewResult(title, value)
		},
	}
}

func tablePresenter(columns []render.Column) Presenter {
	return func(_ Request, value any) render.View {
		return render.NewTable(value, columns)
	}
}

func cardPresenter(prefix string) Presenter {
	return func(req Request, value any) render.View {
		return render.NewCard(value, prefix+req.Subject)
	}
}

// idPath returns a path builder for "<collection>/<id><suffix>".
func idPath(e Entity, suffix string) func(string) string {
	return func(id string) string { return e.Path() + "/" + id + suffix }
}

func idInput(label string) Input {
	return Input{Key: "id", Label: label, Kind: InputNumber}
}

// create wraps a payload builder into a POST to the collection.
func create(e Entity, payload func(forms.Source) (Request, error)) func(forms.Source) (Request, error) {
	return func(src forms.Source) (Request, error) {
		req, err := payload(src)
		if err != nil {
			return Request{}, err
		}
		req.Path = e.Path()
		return req, nil
	}
}

// update parses the required id first, then the payload, and targets "<collection>/<id><suffix>".
func update(e Entity, idLabel, suffix string, payload func(forms.Source) (Request, error)) func(forms.Source) (Request, error) {
	return func(src forms.Source) (Request, error) {
		id, err := forms.ParseRequiredInteger(src.Get("id"), idLabel)
		if err != nil {
			return Request{}, err
		}
		req, err := payload(src)
		if err != nil {
			return Request{}, err
		}
		req.Subject = strconv.FormatInt(id, 10)
		req.Path = idPath(e, suffix)(req.Subject)
		return req, nil
	}
}

// remove builds a bodiless DELETE of "<collection>/<id>".
func remove(e Entity, idLabel string) func(forms.Source) (Request, error) {
	return func(src forms.Source) (Request, error) {
		id, err := forms.ParseRequiredInteger(src.Get("id"), idLabel)
		if err != nil {
			return Request{}, err
		}
		subject := strconv.FormatInt(id, 10)
		return Request{Path: idPath(e, "")(subject), Subject: subject}, nil
	}
}

func withID(label string, inputs []Input) []Input {
	out := make([]Input, 0, len(inputs)+1)
	out = append(out, idInput(label))
	return append(out, inputs...)
}
