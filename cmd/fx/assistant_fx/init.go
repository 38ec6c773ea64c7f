package assistant_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"marryday/internal/api/controllers"
	"marryday/internal/repositories"
	"marryday/internal/services"
	"marryday/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient, provideAssistantService, provideAssistantController)

func provideAIClient() utils.AIClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	client, err := utils.NewAIClient(provider, os.Getenv("AI_API_KEY"), os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Error initializing AI client: %v", err)
	}
	return client
}

func provideAssistantService(
	entitlementService services.EntitlementServiceInterface,
	usageRepo repositories.IUsageRepository,
	aiClient utils.AIClientInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(entitlementService, usageRepo, aiClient)
}

func provideAssistantController(assistantService services.AssistantServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}
