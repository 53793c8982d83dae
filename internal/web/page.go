package web

import (
	"html/template"
	"time"

	"github.com/samvad-hq/storefront-console/pkg/operations"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

type page struct {
	BaseURL string
	Panels  []panel
}

// panel is one entity tab with its forms and result region.
type panel struct {
	Entity     string
	Title      string
	Region     string
	Active     bool
	Operations []operations.Operation
}

func newPage(reg operations.Registry, baseURL string) page {
	p := page{BaseURL: baseURL}
	for i, e := range reg.Entities() {
		p.Panels = append(p.Panels, panel{
			Entity:     string(e),
			Title:      e.Title(),
			Region:     e.Region(),
			Active:     i == 0,
			Operations: reg.ForEntity(e),
		})
	}
	return p
}

var templateFuncs = template.FuncMap{
	"inputType": inputType,
	"inputStep": inputStep,
	"fieldID":   func(opID, key string) string { return opID + "-" + key },
	"timestamp": func(t time.Time) string { return t.Local().Format("2006-01-02 15:04:05") },
	"styleClass": func(s render.Style) string {
		if s == render.StyleError {
			return "error-message"
		}
		return "success-message"
	},
}

func inputType(kind operations.InputKind) string {
	switch kind {
	case operations.InputNumber, operations.InputDecimal:
		return "number"
	case operations.InputEmail:
		return "email"
	case operations.InputPassword:
		return "password"
	case operations.InputBool:
		return "checkbox"
	default:
		return "text"
	}
}

func inputStep(kind operations.InputKind) string {
	if kind == operations.InputDecimal {
		return "0.01"
	}
	return "1"
}
