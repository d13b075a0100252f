package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindspace/internal/ai"
	"mindspace/internal/model"
	"mindspace/internal/service"
)

// NewChatCmd creates the companion chat REPL.
func NewChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk with the AI companion",
		Long:  "Interactive chat with Joy, the wellness companion. Requires OPENAI_API_KEY. Exit with Ctrl-D.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := context.Background()
			a.checkReset(ctx)

			if a.cfg.OpenAIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for the companion chat")
			}

			provider := ai.NewOpenAIProvider(a.cfg.OpenAIKey, a.cfg.AIBaseURL, a.cfg.AIModel, a.logger)
			chat := service.NewChatService(a.chatRepo, a.tasks, a.moods, provider, a.logger)

			if err := chat.PruneOld(ctx, time.Now()); err != nil {
				a.logger.Warn("chat prune failed", zap.Error(err))
			}

			days, err := chat.History(ctx, time.Now())
			if err != nil {
				return err
			}
			if len(days) == 0 {
				fmt.Println("Joy: Olá! Eu sou sua amiga e assistente de bem-estar. Como você está se sentindo hoje?")
			} else {
				for _, day := range days {
					fmt.Printf("--- %s ---\n", day.Date)
					printMessages(day.Messages)
				}
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 64*1024), 64*1024)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				messages, err := chat.Send(ctx, text, time.Now())
				if err != nil {
					fmt.Printf("Erro: %v\n", err)
					continue
				}
				for _, msg := range messages {
					if msg.Role == model.RoleAssistant {
						fmt.Printf("Joy: %s\n", msg.Content)
					}
				}
			}
			fmt.Println()
			return scanner.Err()
		},
	}
}

func printMessages(messages []model.ChatMessage) {
	for _, msg := range messages {
		who := "Você"
		if msg.Role == model.RoleAssistant {
			who = "Joy"
		}
		fmt.Printf("%s: %s\n", who, msg.Content)
	}
}
