package chat_fx

import (
	"time"

	"go.uber.org/fx"

	"atchub/internal/repositories"
	"atchub/internal/services"
	"atchub/pkg/utils"
)

var Module = fx.Provide(
	provideChatRepo, provideChatService)

func provideChatRepo() repositories.ChatRepository {
	return repositories.NewInMemoryChatRepository()
}

func provideChatService(chatRepo repositories.ChatRepository, directory services.DirectoryServiceInterface, content utils.ContentClientInterface, timeout time.Duration) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, directory, content, timeout)
}
