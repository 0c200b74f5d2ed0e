package schema

import (
	"net/http"
	"os"
	"sync"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/tools/converting"
)

type Key string

const (
	RequestingTypeKey Key = "requestingType"
)

// SupplierRequestName labels one outbound supplier exchange in the
// diagnostic history attached to every response.
type SupplierRequestName string

const (
	Search            SupplierRequestName = "search"
	OptionInfo        SupplierRequestName = "option-info"
	Availability      SupplierRequestName = "availability"
	Booking           SupplierRequestName = "booking"
	ConnectionTest    SupplierRequestName = "connection-test"
	ProductSearchData SupplierRequestName = "product-search-data"
	StaffNotify       SupplierRequestName = "staff-notify"
)

type RequestContent struct {
	Url     *string                 `json:"url,omitempty"`
	Method  *string                 `json:"method,omitempty"`
	Body    *string                 `json:"body,omitempty"`
	Headers *map[string]interface{} `json:"headers,omitempty"`
}

type ResponseContent struct {
	StatusCode *int                    `json:"statusCode,omitempty"`
	Headers    *map[string]interface{} `json:"headers,omitempty"`
	Body       *string                 `json:"body,omitempty"`
}

type SupplierRequest struct {
	Name            *SupplierRequestName `json:"name,omitempty"`
	RequestContent  *RequestContent      `json:"requestContent,omitempty"`
	ResponseContent *ResponseContent     `json:"responseContent,omitempty"`
	Duration        *int                 `json:"duration,omitempty"`
	StartDateTime   *time.Time           `json:"startDateTime,omitempty"`
}

type SupplierRequests []SupplierRequest

type supplierRequestsBucket struct {
	supplierRequests SupplierRequests
	sync.Mutex
}

func NewSupplierRequestsBucket() supplierRequestsBucket {
	return supplierRequestsBucket{
		supplierRequests: []SupplierRequest{},
	}
}

func (r *supplierRequestsBucket) SupplierRequests() *SupplierRequests {
	return &r.supplierRequests
}

func (r *supplierRequestsBucket) AddRequests(requests SupplierRequests) {
	r.Lock()
	r.supplierRequests = append(r.supplierRequests, requests...)
	r.Unlock()
}

func (r *supplierRequestsBucket) FinishedRequest(
	requestType SupplierRequestName,
	startTime time.Time,
	statusCode int,
	method string,
	url string,
	requestBody string,
	requestHeaders http.Header,
	responseBody string,
	responseHeaders http.Header,
) {
	reqHeaders := converting.ConvertMap(requestHeaders)

	req := RequestContent{
		Url:     &url,
		Method:  &method,
		Body:    &requestBody,
		Headers: &reqHeaders,
	}

	historyRequest := SupplierRequest{
		Name:           &requestType,
		RequestContent: &req,
	}

	resHeaders := converting.ConvertMap(responseHeaders)

	res := ResponseContent{
		StatusCode: &statusCode,
		Headers:    &resHeaders,
		Body:       &responseBody,
	}

	historyRequest.ResponseContent = &res

	if os.Getenv("TEST") != "true" {
		duration := int(time.Since(startTime).Milliseconds())
		historyRequest.Duration = &duration
		historyRequest.StartDateTime = &startTime
	}

	r.Lock()
	r.supplierRequests = append(r.supplierRequests, historyRequest)
	r.Unlock()
}
