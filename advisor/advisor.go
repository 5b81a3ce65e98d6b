// Package advisor asks a text-generation service for a short financial advice
// about a book: a health summary, three recommendations and a generic outlook,
// formatted in Markdown.
package advisor

import (
	"context"
	"strings"

	"github.com/etnz/finflow"
	"github.com/rs/zerolog"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator is a text-generation service.
type Generator interface {
	// Generate returns the text completion of prompt by model.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Advisor turns financial data into a natural-language report.
//
// Advisor holds no mutable state, so it can be shared. It does not prevent
// concurrent requests: callers that want at most one request in flight guard
// their calls themselves.
type Advisor struct {
	Generator Generator
	// APIKey is the service credential. Only its presence matters here, when
	// empty no request is ever sent.
	APIKey string
	Model  string
	Lang   finflow.Lang
	Logger zerolog.Logger
}

// New returns an Advisor using gen with the default model and language.
func New(gen Generator, apiKey string) *Advisor {
	return &Advisor{
		Generator: gen,
		APIKey:    apiKey,
		Model:     DefaultModel,
		Lang:      finflow.DefaultLang,
		Logger:    zerolog.Nop(),
	}
}

// Messages returns the fixed texts in the advisor's language.
func (a *Advisor) Messages() Messages { return MessagesFor(a.Lang) }

// Advise returns the advice text for transactions, holdings and summary.
//
// It never fails: a missing credential, a failed request and an empty answer
// are each reported by a fixed message in the advisor's language.
func (a *Advisor) Advise(ctx context.Context, transactions []finflow.Transaction, holdings []finflow.Holding, summary finflow.Summary) string {
	msg := a.Messages()
	if strings.TrimSpace(a.APIKey) == "" || a.Generator == nil {
		a.Logger.Warn().Msg("Gemini API key is missing, advice is disabled")
		return msg.MissingKey
	}

	if _, err := finflow.Currency(transactions, holdings); err != nil {
		a.Logger.Error().Err(err).Msg("cannot advise on amounts in several currencies")
		return msg.Failure
	}

	prompt, err := Prompt(NewRequest(transactions, holdings, summary), a.Lang)
	if err != nil {
		a.Logger.Error().Err(err).Msg("cannot build the advice prompt")
		return msg.Failure
	}

	model := a.Model
	if model == "" {
		model = DefaultModel
	}
	a.Logger.Debug().Str("model", model).Int("prompt_bytes", len(prompt)).Msg("requesting advice")

	text, err := a.Generator.Generate(ctx, model, prompt)
	if err != nil {
		a.Logger.Error().Err(err).Str("model", model).Msg("error fetching advice")
		return msg.Failure
	}
	if strings.TrimSpace(text) == "" {
		a.Logger.Warn().Str("model", model).Msg("empty advice returned")
		return msg.Empty
	}
	return text
}
