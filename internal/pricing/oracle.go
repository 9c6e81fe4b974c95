package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/internal/venue"
	"github.com/heyerlyjacob-debug/Jacob-Concert-Scaling/pkg/logger"

	"google.golang.org/genai"
)

// Oracle is the external pricing service: numeric targets in, five tier
// prices out, or an error. The production implementation is a generative
// model; tests substitute their own.
type Oracle interface {
	TierPrices(ctx context.Context, targetGross, premiumShare float64) ([]TierPrice, error)
}

// GeminiOracle asks the Gemini API for tier prices with a JSON response
// schema and decodes the reply strictly. It performs no retries; a failed or
// unparseable call is the caller's problem to surface.
type GeminiOracle struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *logger.Logger
}

// GeminiOracleConfig carries the settings the oracle needs from the
// application config.
type GeminiOracleConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGeminiOracle(ctx context.Context, cfg GeminiOracleConfig, log *logger.Logger) (*GeminiOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiOracle{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     log,
	}, nil
}

// tierPricesSchema constrains the model output to {"tiers": [{"tier","price"}]}.
func tierPricesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tiers": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"tier":  {Type: genai.TypeString},
						"price": {Type: genai.TypeNumber},
					},
				},
			},
		},
	}
}

func (o *GeminiOracle) TierPrices(ctx context.Context, targetGross, premiumShare float64) ([]TierPrice, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := o.client.Models.GenerateContent(ctx, o.model,
		genai.Text(BuildPrompt(targetGross, premiumShare)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   tierPricesSchema(),
		},
	)
	if err != nil {
		o.log.Error("gemini call failed",
			slog.String("model", o.model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	prices, err := DecodeTierPrices(resp.Text())
	if err != nil {
		o.log.Error("gemini response rejected",
			slog.String("model", o.model),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	o.log.LogOracleCall(ctx, o.model, time.Since(start), nil)
	return prices, nil
}

type oracleTier struct {
	Tier  string   `json:"tier"`
	Price *float64 `json:"price"`
}

type oracleResponse struct {
	Tiers []oracleTier `json:"tiers"`
}

// DecodeTierPrices parses an oracle reply strictly. The payload must be a
// JSON object whose "tiers" array holds exactly one entry per catalog tier,
// each with a known tier name and a numeric price. Anything else is a decode
// error, never a best-effort partial result.
func DecodeTierPrices(raw string) ([]TierPrice, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.DisallowUnknownFields()

	var parsed oracleResponse
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("oracle response is not valid JSON: %w", err)
	}
	if parsed.Tiers == nil {
		return nil, fmt.Errorf("oracle response has no tiers field")
	}
	if len(parsed.Tiers) != venue.TierCount() {
		return nil, fmt.Errorf("oracle response has %d tiers, expected %d", len(parsed.Tiers), venue.TierCount())
	}

	seen := make(map[string]bool, len(parsed.Tiers))
	prices := make([]TierPrice, 0, len(parsed.Tiers))
	for _, entry := range parsed.Tiers {
		if !venue.IsTier(entry.Tier) {
			return nil, fmt.Errorf("oracle response names unknown tier %q", entry.Tier)
		}
		if seen[entry.Tier] {
			return nil, fmt.Errorf("oracle response repeats tier %s", entry.Tier)
		}
		if entry.Price == nil {
			return nil, fmt.Errorf("oracle response has no price for tier %s", entry.Tier)
		}
		seen[entry.Tier] = true
		prices = append(prices, TierPrice{Tier: entry.Tier, Price: *entry.Price})
	}
	return prices, nil
}
