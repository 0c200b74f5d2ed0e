package tourplan

import (
	"context"
	"io"
	"net/http"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

type connectionTestRequest struct {
	params        schema.ConnectionTestRequestParams
	configuration schema.TourplanConfiguration
	logger        *zerolog.Logger
}

func (c *connectionTestRequest) requestBody() (string, error) {
	body := hostconnect.AgentInfoRequest{
		Agent: hostconnect.Agent{
			AgentID:  c.configuration.AgentID,
			Password: c.configuration.Password,
		},
	}

	return hostconnect.Document(&body)
}

func (c *connectionTestRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.ConnectionTestResponse, error) {
	connectionTest := schema.ConnectionTestResponse{}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	connectionTest.SupplierRequests = requestsBucket.SupplierRequests()
	connectionTest.Errors = errorsBucket.Errors()

	if !c.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return connectionTest, nil
	}

	requestBody, err := c.requestBody()
	if err != nil {
		return connectionTest, err
	}

	httpRequest, err := supplierRequest(ctx, schema.ConnectionTest, c.configuration, requestBody)
	if err != nil {
		return connectionTest, err
	}

	timeout := c.params.Timeouts.DefaultOr(nil)
	client := newSupplierClient(timeout, httpTransport, c.logger, &requestsBucket)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return connectionTest, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return connectionTest, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return connectionTest, nil
	}

	if reply.AgentInfoReply == nil {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return connectionTest, nil
	}

	connectionTest.Connected = true

	if reply.AgentInfoReply.AgentName != "" {
		connectionTest.AgentName = &reply.AgentInfoReply.AgentName
	}
	if reply.AgentInfoReply.Currency != "" {
		connectionTest.Currency = &reply.AgentInfoReply.Currency
	}

	return connectionTest, nil
}
