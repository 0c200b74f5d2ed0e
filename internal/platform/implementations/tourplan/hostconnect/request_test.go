package hostconnect_test

import (
	"strings"
	"testing"

	"bitbucket.org/crgw/tourplan-hub/internal/platform/implementations/tourplan/hostconnect"
	"github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	t.Run("should wrap the operation in the request envelope", func(t *testing.T) {
		document, err := hostconnect.Document(&hostconnect.AgentInfoRequest{
			Agent: hostconnect.Agent{
				AgentID:  "agent",
				Password: "secret",
			},
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(document, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, document, `<!DOCTYPE Request SYSTEM "hostConnect_5_05_000.dtd">`)
		assert.Contains(t, document, "<Request>")
		assert.Contains(t, document, "</Request>")
		assert.Contains(t, document, "<AgentInfoRequest>")
	})

	t.Run("should put credentials as the first two children", func(t *testing.T) {
		document, err := hostconnect.Document(&hostconnect.OptionInfoRequest{
			Agent: hostconnect.Agent{
				AgentID:  "agent",
				Password: "secret",
			},
			Opt:  "AKLACTOUR01",
			Info: "G",
		})

		assert.NoError(t, err)

		agentIndex := strings.Index(document, "<AgentID>")
		passwordIndex := strings.Index(document, "<Password>")
		optIndex := strings.Index(document, "<Opt>")

		assert.True(t, agentIndex > 0)
		assert.True(t, passwordIndex > agentIndex)
		assert.True(t, optIndex > passwordIndex)
	})

	t.Run("should escape reserved characters in values", func(t *testing.T) {
		document, err := hostconnect.Document(&hostconnect.AddServiceRequest{
			Agent: hostconnect.Agent{
				AgentID:  "agent",
				Password: "secret",
			},
			NewBookingInfo: &hostconnect.NewBookingInfo{
				Name: `O'Brien & Sons <Family>`,
				QB:   "B",
			},
			Opt:      "AKLACTOUR01",
			DateFrom: "2026-10-01",
			SCUqty:   2,
			Adults:   2,
			PuRemark: `Phone: "+64 21 555 123"`,
		})

		assert.NoError(t, err)
		assert.Contains(t, document, "O&#39;Brien &amp; Sons &lt;Family&gt;")
		assert.Contains(t, document, "Phone: &#34;+64 21 555 123&#34;")
		assert.NotContains(t, document, "<Family>")
	})

	t.Run("should omit optional elements when empty", func(t *testing.T) {
		document, err := hostconnect.Document(&hostconnect.OptionInfoRequest{
			Agent: hostconnect.Agent{
				AgentID:  "agent",
				Password: "secret",
			},
			Opt:  "???????????????",
			Info: "G",
		})

		assert.NoError(t, err)
		assert.NotContains(t, document, "<DateFrom>")
		assert.NotContains(t, document, "<SCUqty>")
		assert.NotContains(t, document, "<RoomConfigs>")
	})

	t.Run("should name puRemark with the lowercase prefix", func(t *testing.T) {
		document, err := hostconnect.Document(&hostconnect.AddServiceRequest{
			Agent:    hostconnect.Agent{AgentID: "agent", Password: "secret"},
			Opt:      "AKLACTOUR01",
			DateFrom: "2026-10-01",
			SCUqty:   1,
			Adults:   1,
			PuRemark: "note",
		})

		assert.NoError(t, err)
		assert.Contains(t, document, "<puRemark>note</puRemark>")
	})
}
