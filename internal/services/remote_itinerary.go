package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"

	"github.com/sirupsen/logrus"
)

// Upper bound for a single remote generation call.
const RemoteGenerationTimeout = 60 * time.Second

// BuildItineraryPrompt renders the natural-language request sent to a remote generator.
func BuildItineraryPrompt(req SynthesisRequest) string {
	var b strings.Builder
	b.WriteString("You are a travel planner for students on a budget.\n")
	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "Start date: %s\n", dateOnly(req.StartDate).Format(time.DateOnly))
	fmt.Fprintf(&b, "Days: %d\n", req.Days)
	fmt.Fprintf(&b, "Budget (INR): %d\n", req.Budget)
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Interests, ", "))
	b.WriteString("Provide a day-by-day itinerary in JSON format with keys: ")
	b.WriteString("itinerary (list of days with activities), latlon (approximate coordinates), pois (list of POIs), budget_est\n")
	return b.String()
}

// GenerateRemoteItinerary delegates itinerary generation to gen.
//
// The outcome is always a tagged result: Failure when the call itself fails,
// Raw when the generator reports a reply without generated text,
// Structured when the generated text parses as JSON, Raw otherwise. A parse
// failure is not an error; the text is handed back for manual inspection.
func GenerateRemoteItinerary(
	ctx context.Context,
	req SynthesisRequest,
	gen ports.ItineraryGenerator,
) domain.RemoteResult {
	var err error
	defer obs.Time(ctx, "itinerary.GenerateRemote")(&err)

	if gen == nil {
		err = fmt.Errorf("%w: remote generator is not configured", domain.ErrRemoteGeneration)
		return domain.RemoteResult{Kind: domain.RemoteFailure, Error: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, RemoteGenerationTimeout)
	defer cancel()

	text, err := gen.GenerateText(ctx, BuildItineraryPrompt(req))
	var rawReply *domain.RawReplyError
	if errors.As(err, &rawReply) {
		err = nil
		return domain.RemoteResult{Kind: domain.RemoteRaw, Raw: rawReply.Text}
	}
	if err != nil {
		return domain.RemoteResult{Kind: domain.RemoteFailure, Error: err.Error()}
	}

	return ClassifyGeneratedText(text)
}

// ClassifyGeneratedText parses generated text as a JSON document when possible.
func ClassifyGeneratedText(text string) domain.RemoteResult {
	doc := []byte(strings.TrimSpace(text))
	if len(doc) == 0 || !json.Valid(doc) {
		return domain.RemoteResult{Kind: domain.RemoteRaw, Raw: text}
	}

	res := domain.RemoteResult{Kind: domain.RemoteStructured, Document: json.RawMessage(doc)}

	var plan domain.GeneratedPlan
	if err := json.Unmarshal(doc, &plan); err != nil {
		logrus.WithError(err).Debug("generated document does not match itinerary shape")
		return res
	}
	res.Plan = &plan

	return res
}
