package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/adina/skillpilot/ent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	for _, row := range rows {
		st, ok := byPurpose[row.Purpose]
		if !ok {
			st = &LLMUsageStats{Purpose: row.Purpose}
			byPurpose[row.Purpose] = st
		}
		st.Requests++
		if !row.Success {
			st.Failures++
		}
		st.InputTokens += row.InputTokens
		st.OutputTokens += row.OutputTokens
	}

	out := make([]LLMUsageStats, 0, len(byPurpose))
	for _, st := range byPurpose {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	for _, row := range rows {
		if !row.Success {
			continue
		}
		mu, ok := byModel[row.Model]
		if !ok {
			mu = &LLMModelUsage{Model: row.Model}
			byModel[row.Model] = mu
		}
		mu.Requests++
		mu.InputTokens += row.InputTokens
		mu.OutputTokens += row.OutputTokens
	}

	out := make([]LLMModelUsage, 0, len(byModel))
	for _, mu := range byModel {
		out = append(out, *mu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
