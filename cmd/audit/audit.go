package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/tools/client"
	"bitbucket.org/crgw/tourplan-hub/internal/tools/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Drives a running hub's own HTTP API the way a caller would and reports
// which operations come back with errors in their bucket. Meant for
// verifying an agent setup after credential or endpoint changes.
//
// Booking is deliberately left out, a POST there creates a real
// reservation on the supplier side.

type auditResponse struct {
	Errors *[]struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type auditor struct {
	options    *client.Options
	httpClient *http.Client
	log        *zerolog.Logger
	failed     int
}

func (a *auditor) check(name string, path string, payload map[string]any) {
	body, _ := json.Marshal(payload)

	request, err := http.NewRequest(http.MethodPost, a.options.BaseURL()+path, bytes.NewBuffer(body))
	if err != nil {
		a.fail(name, err.Error())
		return
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", a.options.Name()+"-audit")

	response, err := a.httpClient.Do(request)
	if err != nil {
		a.fail(name, err.Error())
		return
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		a.fail(name, fmt.Sprintf("status %d", response.StatusCode))
		return
	}

	decoded := auditResponse{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		a.fail(name, "unreadable response: "+err.Error())
		return
	}

	if decoded.Errors != nil && len(*decoded.Errors) > 0 {
		first := (*decoded.Errors)[0]
		a.fail(name, fmt.Sprintf("%s: %s", first.Code, first.Message))
		return
	}

	a.log.Info().Str("check", name).Msg("ok")
}

func (a *auditor) fail(name string, reason string) {
	a.failed++
	a.log.Error().Str("check", name).Str("reason", reason).Msg("failed")
}

func main() {
	_ = godotenv.Load(".env")
	log := logging.New(os.Getenv("LOG_LEVEL"))

	hubUrl := flag.String("hub", "http://localhost:8080", "base URL of a running hub")
	destination := flag.String("destination", "", "destination to search")
	code := flag.String("code", "", "product code to audit in depth")
	dateFrom := flag.String("date-from", "", "window start, YYYY-MM-DD")
	dateTo := flag.String("date-to", "", "window end, YYYY-MM-DD")
	timeout := flag.Duration("timeout", 45*time.Second, "per-check timeout")
	flag.Parse()

	options, err := client.NewOptions(
		client.WithBaseURL(*hubUrl+"/tourplan"),
		client.WithTimeout(*timeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid client options")
	}

	a := &auditor{
		options: options,
		httpClient: &http.Client{
			Timeout:   options.Timeout(),
			Transport: client.NewOutgoingLoggerRoundTripper(log, "tourplan-hub"),
		},
		log: log,
	}

	a.check("connection-test", "/connection-test", map[string]any{})
	a.check("product-search-data", "/product-search-data", map[string]any{})

	if *destination != "" {
		a.check("search", "/search", map[string]any{
			"searchType":  "accommodation",
			"destination": *destination,
		})
	}

	if *code != "" {
		optionInfo := map[string]any{"code": *code}
		if *dateFrom != "" && *dateTo != "" {
			optionInfo["dateFrom"] = *dateFrom
			optionInfo["dateTo"] = *dateTo
		}
		a.check("option-info", "/option-info", optionInfo)

		if *dateFrom != "" && *dateTo != "" {
			a.check("availability", "/availability", map[string]any{
				"code":     *code,
				"dateFrom": *dateFrom,
				"dateTo":   *dateTo,
				"adults":   2,
			})
		}
	}

	if a.failed > 0 {
		log.Error().Int("failed", a.failed).Msg("Audit finished with failures")
		os.Exit(1)
	}

	log.Info().Msg("Audit finished clean")
}
