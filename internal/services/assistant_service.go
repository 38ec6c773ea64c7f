package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"marryday/internal/models/request_models"
	"marryday/internal/models/response_models"
	"marryday/internal/repositories"
	"marryday/pkg/utils"
)

const assistantSystemPrompt = `You are a wedding planning assistant for couples in Korea.
Answer in the user's language. Be concrete: suggest vendors by category, realistic
KRW budgets, and timelines counted back from the wedding date. Keep answers short.`

type AssistantServiceInterface interface {
	Chat(ctx context.Context, accountID uuid.UUID, message string) (*response_models.ChatResponse, error)
	GenerateDocument(ctx context.Context, accountID uuid.UUID, req request_models.DocumentRequest) (*response_models.DocumentResponse, error)
}

type AssistantService struct {
	entitlement EntitlementServiceInterface
	usageRepo   repositories.IUsageRepository
	aiClient    utils.AIClientInterface
}

func NewAssistantService(
	entitlement EntitlementServiceInterface,
	usageRepo repositories.IUsageRepository,
	aiClient utils.AIClientInterface,
) AssistantServiceInterface {
	return &AssistantService{
		entitlement: entitlement,
		usageRepo:   usageRepo,
		aiClient:    aiClient,
	}
}

func (a *AssistantService) Chat(ctx context.Context, accountID uuid.UUID, message string) (*response_models.ChatResponse, error) {
	ent, err := a.entitlement.GetEntitlement(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !ent.IsPremium && ent.DailyUsage.Remaining != nil && *ent.DailyUsage.Remaining <= 0 {
		return nil, utils.ErrQuotaExceeded
	}

	reply, err := a.aiClient.Chat(ctx, assistantSystemPrompt, message)
	if err != nil {
		log.Printf("assistant chat for account %s: %v", accountID, err)
		return nil, utils.ErrAIResponseInvalid
	}

	// counting is best-effort; a lost increment never blocks the reply
	if err := a.usageRepo.Increment(ctx, accountID, utils.DateKey(time.Now())); err != nil {
		log.Printf("assistant chat: usage increment failed for account %s: %v", accountID, err)
	}

	usage := ent.DailyUsage
	usage.Used++
	if usage.Remaining != nil {
		remaining := *usage.Remaining - 1
		if remaining < 0 {
			remaining = 0
		}
		usage.Remaining = &remaining
	}

	return &response_models.ChatResponse{
		Reply:      reply,
		DailyUsage: usage,
	}, nil
}

func (a *AssistantService) GenerateDocument(ctx context.Context, accountID uuid.UUID, req request_models.DocumentRequest) (*response_models.DocumentResponse, error) {
	ent, err := a.entitlement.GetEntitlement(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ent.IsPremium {
		return nil, utils.ErrPremiumRequired
	}

	content, err := a.aiClient.GenerateJSON(ctx, buildDocumentPrompt(req))
	if err != nil {
		log.Printf("assistant document %s for account %s: %v", req.Kind, accountID, err)
		return nil, utils.ErrAIResponseInvalid
	}

	return &response_models.DocumentResponse{
		Kind:     req.Kind,
		Document: json.RawMessage(content),
	}, nil
}

func buildDocumentPrompt(req request_models.DocumentRequest) string {
	var b strings.Builder

	switch req.Kind {
	case "budget":
		b.WriteString(`Create a wedding budget breakdown. Return JSON only:
{"currency":"KRW","total":0,"categories":[{"name":"...","amount":0,"note":"..."}]}`)
	case "timeline":
		b.WriteString(`Create a wedding preparation timeline. Return JSON only:
{"milestones":[{"months_before":12,"title":"...","tasks":["..."]}]}`)
	default:
		b.WriteString(`Create a wedding preparation checklist. Return JSON only:
{"sections":[{"title":"...","items":[{"task":"...","done":false}]}]}`)
	}

	b.WriteString("\n\nContext:\n")
	if req.WeddingDate != "" {
		fmt.Fprintf(&b, "- wedding date: %s\n", req.WeddingDate)
	}
	if req.GuestCount > 0 {
		fmt.Fprintf(&b, "- guest count: %d\n", req.GuestCount)
	}
	if req.BudgetTotal > 0 {
		fmt.Fprintf(&b, "- total budget: %d KRW\n", req.BudgetTotal)
	}
	if req.ExtraContext != "" {
		fmt.Fprintf(&b, "- notes: %s\n", req.ExtraContext)
	}
	b.WriteString("\nReturn JSON only. No comments, no markdown.")

	return b.String()
}
