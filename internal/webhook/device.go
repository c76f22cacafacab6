package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dokzlo13/luxctl/internal/light"
)

// DefaultBaseURL is the Luxafor webhook actions endpoint.
const DefaultBaseURL = "https://api.luxafor.com/webhook/v1/actions"

const defaultTimeout = 30 * time.Second

// Doer abstracts the HTTP client performing one request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Device drives a light paired with the Luxafor webhook service. The
// service only exposes solid color, blink, and pattern actions: fade
// and wave report ErrUnsupportedCommand without performing a request,
// and a strobe is sent as a blink since the wire format carries no
// timing fields.
type Device struct {
	id      light.DeviceID
	baseURL string
	client  Doer
}

var _ light.Light = (*Device)(nil)

// NewDevice validates the device identifier and returns a webhook
// backend. An empty baseURL selects DefaultBaseURL; a zero timeout
// selects the default of 30 seconds.
func NewDevice(deviceID, baseURL string, timeout time.Duration) (*Device, error) {
	id, err := light.ParseDeviceID(deviceID)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Device{
		id:      id,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// actionRequest is the body shape shared by all webhook actions.
type actionRequest struct {
	UserID       string       `json:"userId"`
	ActionFields actionFields `json:"actionFields"`
}

type actionFields struct {
	Color       string `json:"color,omitempty"`
	CustomColor string `json:"custom_color,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
}

func (d *Device) ID() light.DeviceID {
	return d.id
}

func (d *Device) TurnOff(ctx context.Context) error {
	log.Info().Stringer("device", d.id).Msg("Turning light off")
	return d.SetSolid(ctx, light.RGB(0, 0, 0), false)
}

func (d *Device) SetSolid(ctx context.Context, c light.Color, blink bool) error {
	log.Info().Stringer("device", d.id).Stringer("color", c).Bool("blink", blink).Msg("Setting solid color")
	fields := actionFields{Color: c.String()}
	if c.IsCustom() {
		fields = actionFields{Color: "custom", CustomColor: c.String()}
	}
	endpoint := "solid_color"
	if blink {
		endpoint = "blink"
	}
	return d.post(ctx, endpoint, actionRequest{UserID: d.id.String(), ActionFields: fields})
}

func (d *Device) SetFade(_ context.Context, _ light.Color, _ uint8) error {
	return fmt.Errorf("%w: fade is not available over the webhook API", light.ErrUnsupportedCommand)
}

func (d *Device) SetStrobe(ctx context.Context, c light.Color, speed, repeat uint8) error {
	// Blink is the closest action the service offers; it has no speed or
	// repeat fields.
	log.Debug().Uint8("speed", speed).Uint8("repeat", repeat).
		Msg("Webhook API does not support strobe timing, sending blink")
	return d.SetSolid(ctx, c, true)
}

func (d *Device) SetWave(_ context.Context, _ light.Color, _ light.WaveStyle, _, _ uint8) error {
	return fmt.Errorf("%w: wave is not available over the webhook API", light.ErrUnsupportedCommand)
}

func (d *Device) SetPattern(ctx context.Context, p light.Pattern, repeat uint8) error {
	// The pattern action has no repeat field; the count is accepted for
	// contract uniformity and dropped at this boundary.
	log.Debug().Uint8("repeat", repeat).Msg("Webhook API does not support a repeat count, ignoring")
	log.Info().Stringer("device", d.id).Stringer("pattern", p).Msg("Setting pattern")
	return d.post(ctx, "pattern", actionRequest{
		UserID:       d.id.String(),
		ActionFields: actionFields{Pattern: p.String()},
	})
}

func (d *Device) post(ctx context.Context, endpoint string, payload actionRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", light.ErrInvalidRequest, err)
	}
	url := d.baseURL + "/" + endpoint
	log.Debug().Str("url", url).RawJSON("body", body).Msg("Sending webhook request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", light.ErrInvalidRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Webhook request failed")
		return fmt.Errorf("%w: %v", light.ErrInvalidRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info().Msg("Webhook call successful")
		return nil
	}
	respBody, _ := io.ReadAll(resp.Body)
	log.Error().Int("status", resp.StatusCode).Bytes("body", respBody).Msg("Webhook call failed")
	return &light.UnexpectedStatusError{StatusCode: resp.StatusCode}
}
