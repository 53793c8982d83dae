package console

import (
	"errors"

	"github.com/samvad-hq/storefront-console/internal/domain"
	"github.com/samvad-hq/storefront-console/pkg/apiclient"
	"github.com/samvad-hq/storefront-console/pkg/forms"
	"github.com/samvad-hq/storefront-console/pkg/operations"
	"github.com/samvad-hq/storefront-console/pkg/render"
)

// Kind classifies how an action ended.
type Kind string

const (
	KindOK         Kind = domain.KindOK
	KindValidation Kind = domain.KindValidation
	KindRequest    Kind = domain.KindRequest
	KindNetwork    Kind = domain.KindNetwork
)

// Result is everything the presentation layer needs to draw one action's outcome.
type Result struct {
	Operation string
	Region    string
	Kind      Kind
	Value     any
	Err       error
	// Status is the HTTP status for request errors.
	Status  int
	BaseURL string
	Request operations.Request
	View    render.View
}

// Classify maps an error onto its kind. Unrecognized errors count as network failures.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		return KindValidation
	}
	var rerr *apiclient.RequestError
	if errors.As(err, &rerr) {
		return KindRequest
	}
	return KindNetwork
}

// FailureView builds the error panel. Network failures point at the base URL.
func FailureView(err error, baseURL string) render.View {
	if Classify(err) == KindNetwork {
		return render.NewFailure(err.Error(), "Make sure the API server is running at "+baseURL)
	}
	return render.NewFailure(err.Error(), "")
}

func statusOf(err error) int {
	var rerr *apiclient.RequestError
	if errors.As(err, &rerr) {
		return rerr.StatusCode
	}
	return 0
}
