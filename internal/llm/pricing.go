package llm

// ModelCost holds USD prices per million tokens for one model.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the estimated USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1_000_000*c.InputPerMTok +
		float64(outputTokens)/1_000_000*c.OutputPerMTok
}

// modelCosts is keyed by the model IDs the providers report. Prices are the
// published list prices per 1M tokens; derived totals are estimates only.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5-20251001":  {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-sonnet-4-20250514":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-3-5-haiku-20241022":  {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-3-5-sonnet-20241022": {InputPerMTok: 3, OutputPerMTok: 15},

	// OpenAI
	"gpt-4o":       {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-mini":  {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4.1":      {InputPerMTok: 2, OutputPerMTok: 8},
	"gpt-4.1-mini": {InputPerMTok: 0.4, OutputPerMTok: 1.6},

	// Gemini
	"gemini-2.0-flash":      {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.0-flash-lite": {InputPerMTok: 0.075, OutputPerMTok: 0.3},
	"gemini-2.0-pro":        {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gemini-2.5-pro":        {InputPerMTok: 1.25, OutputPerMTok: 10},
}

// LookupCost returns pricing for a model ID, or nil when the model is not in
// the table. The mock provider's models never are.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}
