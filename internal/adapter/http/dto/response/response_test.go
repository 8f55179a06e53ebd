package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
)

func TestFromSession(t *testing.T) {
	now := time.Now().UTC()
	s := entities.GenerationSession{
		ID:          "s-1",
		UserID:      "u-1",
		Idea:        "coffee",
		Status:      entities.SessionStatusGenerating,
		CurrentStep: entities.SectionMarket,
		Progress:    8,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromSession(s)
	if res.ID != "s-1" || res.Status != "generating" || res.Progress != 8 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.CurrentStep != entities.SectionMarket {
		t.Fatalf("unexpected step: %q", res.CurrentStep)
	}

	list := FromSessions([]entities.GenerationSession{s})
	if len(list) != 1 || list[0].ID != "s-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if empty := FromSessions(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}
}

func TestFromSessionCostSummary(t *testing.T) {
	sum := entities.SessionCostSummary{
		Records:      []entities.CostRecord{{SectionID: "market_research", Provider: "groq", InputTokens: 10, OutputTokens: 5, Cost: 0.01}},
		TotalCost:    0.01,
		TotalTokens:  15,
		SectionCount: 1,
	}
	res := FromSessionCostSummary("s-1", sum)
	if res.SessionID != "s-1" || len(res.Records) != 1 || res.TotalTokens != 15 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Records[0].Provider != "groq" {
		t.Fatalf("unexpected record: %+v", res.Records[0])
	}
}

func TestFromSubscription(t *testing.T) {
	sub := entities.Subscription{
		ID:           "sub-1",
		Tier:         entities.SubscriptionTierPro,
		Status:       entities.SubscriptionStatusActive,
		Amount:       29,
		PaymentID:    "pay-1",
		MPPayloadRaw: json.RawMessage(`{"id":1,"status":"approved"}`),
	}
	res := FromSubscription(sub)
	if res.Tier != "pro" || res.Status != "active" || res.Amount != 29 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.MPPayload["status"] != "approved" {
		t.Fatalf("expected decoded payload, got %+v", res.MPPayload)
	}

	sub.MPPayloadRaw = json.RawMessage(`"not-an-object"`)
	if got := FromSubscription(sub); got.MPPayload != nil {
		t.Fatalf("expected payload dropped, got %+v", got.MPPayload)
	}
}
