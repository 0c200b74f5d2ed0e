package tourplan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"bitbucket.org/crgw/tourplan-hub/internal/schema"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/client/mailer"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/converting"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/requesting"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// The supplier creates one booking per AddService call. Every booking goes
// in under the default rate plan; rate selection is not exposed to the site.
const defaultRateId = "Default"

type bookingRequest struct {
	params              schema.BookingRequestParams
	configuration       schema.TourplanConfiguration
	mailerConfiguration schema.MailerConfiguration
	logger              *zerolog.Logger
}

// travellerName renders "Surname/Firstname" the way the supplier's booking
// screens expect, accents folded to plain latin.
func (b *bookingRequest) travellerName() string {
	customer := b.params.Customer

	return converting.LatinCharacters(
		fmt.Sprintf("%s/%s", strings.TrimSpace(customer.LastName), strings.TrimSpace(customer.FirstName)),
	)
}

func (b *bookingRequest) remark() string {
	pieces := []string{}

	if b.params.Customer.Phone != "" {
		pieces = append(pieces, "Phone: "+b.params.Customer.Phone)
	}

	brokerReference := converting.Unwrap(b.params.BrokerReference)
	if brokerReference != "" {
		pieces = append(pieces, "Agency ref: "+brokerReference)
	}

	return strings.Join(pieces, ". ")
}

func (b *bookingRequest) requestBody() (string, error) {
	email := string(b.params.Customer.Email)

	body := hostconnect.AddServiceRequest{
		Agent: hostconnect.Agent{
			AgentID:  b.configuration.AgentID,
			Password: b.configuration.Password,
		},
		NewBookingInfo: &hostconnect.NewBookingInfo{
			Name:  b.travellerName(),
			QB:    "B",
			Email: email,
		},
		Opt:      b.params.Code,
		RateId:   defaultRateId,
		DateFrom: b.params.DateFrom,
		SCUqty:   nightsBetween(b.params.DateFrom, b.params.DateTo),
		Adults:   b.params.Adults,
		Children: b.params.Children,
		RoomType: string(converting.Unwrap(b.params.RoomType)),
		Email:    email,
		PuRemark: b.remark(),
	}

	return hostconnect.Document(&body)
}

func fallbackReference() string {
	return "WEB-" + strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
}

// notifyStaff mails the manual-confirmation queue. Failures are logged and
// swallowed, the customer already holds the fallback reference.
func (b *bookingRequest) notifyStaff(ctx context.Context, reference string, supplierStatus string) {
	if !b.mailerConfiguration.IsConfigured() {
		return
	}

	staffMailer, err := mailer.New(b.mailerConfiguration, b.logger)
	if err != nil {
		b.logger.Error().Err(err).Msg("could not build mailer for booking notification")
		return
	}

	subject := "Booking requires manual confirmation: " + reference
	text := fmt.Sprintf(
		"A booking for %s (%s to %s) came back from the supplier with status %q.\n"+
			"Customer: %s, %s\n"+
			"Reference handed to the customer: %s\n"+
			"Please confirm the booking with the supplier and follow up.",
		b.params.Code,
		b.params.DateFrom,
		b.params.DateTo,
		supplierStatus,
		b.travellerName(),
		string(b.params.Customer.Email),
		reference,
	)

	if err := staffMailer.NotifyStaff(ctx, subject, text); err != nil {
		b.logger.Error().Err(err).Str("reference", reference).Msg("booking notification mail failed")
	}
}

func (b *bookingRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.BookingResponse, error) {
	booking := schema.BookingResponse{
		Status: schema.BookingResponseStatusFAILED,
	}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	booking.SupplierRequests = requestsBucket.SupplierRequests()
	booking.Errors = errorsBucket.Errors()

	if !b.configuration.IsConfigured() {
		errorsBucket.AddError(schema.NewNotConfiguredError())
		return booking, nil
	}

	requestBody, err := b.requestBody()
	if err != nil {
		return booking, err
	}

	httpRequest, err := supplierRequest(ctx, schema.Booking, b.configuration, requestBody)
	if err != nil {
		return booking, err
	}

	timeout := b.params.Timeouts.DefaultOr(b.params.Timeouts.Booking)
	client := newSupplierClient(timeout, httpTransport, b.logger, &requestsBucket)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		errorsBucket.AddError(*e)
		return booking, nil
	}

	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	reply, ok := hostconnect.Parse(bodyBytes)
	if !ok {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return booking, nil
	}

	if message := reply.ErrorMessage(); message != "" {
		errorsBucket.AddError(schema.NewSupplierError(message))
		return booking, nil
	}

	if reply.AddServiceReply == nil {
		errorsBucket.AddError(schema.NewSupplierError("invalid response format"))
		return booking, nil
	}

	serviceReply := reply.AddServiceReply
	booking.SupplierStatus = &serviceReply.Status

	if serviceReply.BookingId != "" {
		booking.SupplierBookingId = &serviceReply.BookingId
	}

	if serviceReply.Status == "OK" && serviceReply.Ref != "" {
		booking.Status = schema.BookingResponseStatusOK
		booking.SupplierBookingReference = &serviceReply.Ref
		return booking, nil
	}

	// Any reply we can read but that is not a firm confirmation goes to the
	// manual queue with a locally generated reference.
	reference := fallbackReference()

	booking.Status = schema.BookingResponseStatusPENDING
	booking.FallbackReference = &reference

	if serviceReply.Ref != "" {
		booking.SupplierBookingReference = &serviceReply.Ref
	}

	b.notifyStaff(ctx, reference, serviceReply.Status)

	return booking, nil
}
