package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samvad-hq/storefront-console/internal/console"
	"github.com/samvad-hq/storefront-console/internal/logger"
	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

// Executor runs one console operation.
type Executor interface {
	Execute(ctx context.Context, opID string, src forms.Source) (console.Result, error)
}

// SmokeStep is the outcome of one operation in a smoke run.
type SmokeStep struct {
	Operation  string       `json:"operation"`
	Kind       console.Kind `json:"kind"`
	Expected   console.Kind `json:"expected"`
	Message    string       `json:"message,omitempty"`
	DurationMs int64        `json:"duration_ms"`
}

// Passed reports whether the step ended the way the run expected.
func (s SmokeStep) Passed() bool { return s.Kind == s.Expected }

// SmokeReport summarizes a smoke run.
type SmokeReport struct {
	Steps  []SmokeStep `json:"steps"`
	Failed int         `json:"failed"`
}

// smokeRun carries ids between steps.
type smokeRun struct {
	exec   Executor
	log    logger.Logger
	report SmokeReport
	ids    map[string]string
}

// Smoke walks a create, read, update, delete cycle over categories, users,
// products and orders. Records it creates are removed again at the end.
func Smoke(ctx context.Context, exec Executor, log logger.Logger) (SmokeReport, error) {
	if exec == nil {
		return SmokeReport{}, fmt.Errorf("executor must not be nil")
	}
	run := &smokeRun{exec: exec, log: logger.Ensure(log), ids: make(map[string]string)}
	email := "smoke-" + uuid.NewString()[:8] + "@example.com"

	run.step(ctx, "categories.create", forms.Values{"name": "Smoke Electronics", "description": "Created by smoke run"}, "category", "categoryId")
	run.step(ctx, "categories.get", run.with("id", "category"), "", "")
	run.step(ctx, "categories.update", run.with("id", "category", "name", "Smoke Electronics (updated)", "description", "Updated by smoke run"), "", "")
	run.step(ctx, "categories.list", forms.Values{}, "", "")

	run.step(ctx, "users.create", userForm(email, "Smoke"), "user", "userId")
	run.step(ctx, "users.get", run.with("id", "user"), "", "")
	run.step(ctx, "users.update", mergeForms(run.with("id", "user"), userForm(email, "Smoked")), "", "")
	run.step(ctx, "users.byEmail", forms.Values{"email": email}, "", "")
	run.step(ctx, "users.list", forms.Values{}, "", "")

	run.step(ctx, "products.create", mergeForms(run.with("categoryId", "category"), productForm("Smoke Widget", "5")), "product", "productId")
	run.step(ctx, "products.get", run.with("id", "product"), "", "")
	run.step(ctx, "products.stock", run.with("id", "product"), "", "")
	run.step(ctx, "products.updateStock", run.with("id", "product", "quantity", "0"), "", "")
	run.step(ctx, "products.update", mergeForms(run.with("id", "product", "categoryId", "category"), productForm("Smoke Widget v2", "3")), "", "")
	run.step(ctx, "products.byCategory", run.with("categoryId", "category"), "", "")

	run.step(ctx, "orders.create", mergeForms(run.with("userId", "user"), orderForm()), "order", "orderId")
	run.step(ctx, "orders.get", run.with("id", "order"), "", "")
	run.step(ctx, "orders.byUser", run.with("userId", "user"), "", "")
	run.step(ctx, "orders.userCount", run.with("userId", "user"), "", "")
	run.step(ctx, "orders.updateStatus", run.with("id", "order", "status", "SHIPPED"), "", "")

	run.step(ctx, "orders.delete", run.with("id", "order"), "", "")
	run.step(ctx, "products.delete", run.with("id", "product"), "", "")
	run.step(ctx, "users.delete", run.with("id", "user"), "", "")
	run.step(ctx, "categories.delete", run.with("id", "category"), "", "")
	run.expect(ctx, "categories.get", run.with("id", "category"), console.KindRequest)

	run.log.InfoObj("smoke run finished", "smoke_report", map[string]any{
		"steps":  len(run.report.Steps),
		"failed": run.report.Failed,
	})
	if run.report.Failed > 0 {
		return run.report, fmt.Errorf("smoke run: %d of %d steps failed", run.report.Failed, len(run.report.Steps))
	}
	return run.report, nil
}

// step runs opID expecting success. When saveAs is set the field named key of
// the returned record is remembered under saveAs for later steps.
func (r *smokeRun) step(ctx context.Context, opID string, src forms.Values, saveAs, key string) {
	res := r.expect(ctx, opID, src, console.KindOK)
	if saveAs == "" || res.Kind != console.KindOK {
		return
	}
	rec, _ := res.Value.(*apiclient.Record)
	if v, ok := rec.Get(key); ok {
		r.ids[saveAs] = render.FormatValue(v)
	}
}

func (r *smokeRun) expect(ctx context.Context, opID string, src forms.Values, want console.Kind) console.Result {
	start := time.Now()
	res, err := r.exec.Execute(ctx, opID, src)
	st := SmokeStep{
		Operation:  opID,
		Kind:       res.Kind,
		Expected:   want,
		DurationMs: time.Since(start).Milliseconds(),
	}
	switch {
	case err != nil:
		st.Message = err.Error()
	case res.Err != nil:
		st.Message = res.Err.Error()
	}
	if !st.Passed() {
		r.report.Failed++
		r.log.WarnObj("smoke step failed", "smoke_step", st)
	} else {
		r.log.DebugObj("smoke step passed", "smoke_step", st)
	}
	r.report.Steps = append(r.report.Steps, st)
	return res
}

// with builds form values from key/value pairs. A value naming a remembered id is replaced by that id.
func (r *smokeRun) with(pairs ...string) forms.Values {
	out := forms.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v := pairs[i+1]
		if id, ok := r.ids[v]; ok {
			v = id
		}
		out[pairs[i]] = v
	}
	return out
}

func mergeForms(sets ...forms.Values) forms.Values {
	out := forms.Values{}
	for _, set := range sets {
		for k, v := range set {
			if v == "" {
				continue
			}
			out[k] = v
		}
	}
	return out
}

func userForm(email, first string) forms.Values {
	return forms.Values{
		"email":        email,
		"passwordHash": "smoke-secret",
		"firstName":    first,
		"lastName":     "Tester",
		"phone":        "555-0199",
		"role":         "CUSTOMER",
		"isActive":     "true",
	}
}

func productForm(name, stock string) forms.Values {
	return forms.Values{
		"name":        name,
		"description": "Smoke run product",
		"price":       "19.99",
		"stock":       stock,
		"sku":         "SMOKE-" + uuid.NewString()[:6],
		"isActive":    "true",
	}
}

func orderForm() forms.Values {
	return forms.Values{
		"orderNumber": "SMOKE-" + uuid.NewString()[:6],
		"status":      "PENDING",
		"totalAmount": "19.99",
		"notes":       "Smoke run order",
	}
}
