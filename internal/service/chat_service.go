package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"mindspace/internal/ai"
	"mindspace/internal/model"
	"mindspace/internal/repository"
)

const (
	// ChatRetentionDays is how long daily transcripts are kept.
	ChatRetentionDays = 14

	// chatErrorReply is appended instead of the assistant reply when the
	// AI service fails.
	chatErrorReply = "Desculpe, houve um erro ao falar com a IA. Tente novamente mais tarde."

	chatPersona = `Você é Joy, uma companheira de bem-estar. Converse de forma natural, ` +
		`carinhosa e leve, como num papo de mensagens. Seja gentil, empática e atenta ao humor ` +
		`da pessoa. Você não é terapeuta; é uma amiga que sabe escutar e acolher. Pode brincar ` +
		`e fazer comentários leves, sem exagerar. Evite respostas longas; fale de um jeito ` +
		`casual e próximo. Se a pessoa compartilhar sentimentos, acompanhe e só aprofunde se ` +
		`ela demonstrar vontade de falar mais.`
)

// createTaskIntent matches simple Portuguese task-creation requests,
// e.g. "cria tarefa Comprar pão".
var createTaskIntent = regexp.MustCompile(`(?i)(?:cria|criar|adiciona|adicionar)\s+(?:tarefa\s+)?(.+)`)

// ChatService owns the companion conversation: one session per process,
// seeded once with the persona plus today's task and mood context.
type ChatService struct {
	chatRepo *repository.ChatRepository
	taskSvc  *TaskService
	moodSvc  *MoodService
	provider ai.Provider
	logger   *zap.Logger

	// seeded guards the one-time system context build. The app is
	// single-threaded event driven, so no lock is needed.
	seeded bool
	system string
}

func NewChatService(chatRepo *repository.ChatRepository, taskSvc *TaskService, moodSvc *MoodService, provider ai.Provider, logger *zap.Logger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		taskSvc:  taskSvc,
		moodSvc:  moodSvc,
		provider: provider,
		logger:   logger,
	}
}

// seedIfNeeded builds the system prompt on first use: the persona plus a
// snapshot of today's tasks and mood. Seeding failures are ignored so the
// chat still works without context.
func (s *ChatService) seedIfNeeded(ctx context.Context, now time.Time) {
	if s.seeded {
		return
	}
	s.seeded = true
	s.system = chatPersona

	tasks, err := s.taskSvc.TasksForDay(ctx, now)
	if err != nil {
		s.logger.Warn("chat seeding: load tasks", zap.Error(err))
		return
	}
	mood, err := s.moodSvc.TodaysMood(ctx, now)
	if err != nil {
		s.logger.Warn("chat seeding: load mood", zap.Error(err))
		return
	}

	var b strings.Builder
	b.WriteString(chatPersona)
	b.WriteString("\n\nContexto:\nTarefas de hoje: ")
	if len(tasks) == 0 {
		b.WriteString("nenhuma")
	}
	for i, t := range tasks {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Title)
		if t.Completed {
			b.WriteString(" (completada)")
		}
	}
	b.WriteString("\nHumor de hoje: ")
	if mood == nil {
		b.WriteString("Sem registro.")
	} else {
		fmt.Fprintf(&b, "%s, emoções: %s, nota: %s",
			model.MoodLabel(mood.Mood), strings.Join(mood.Emotions, ", "), mood.Note)
	}
	s.system = b.String()
}

// History returns the retained transcript, oldest day first.
func (s *ChatService) History(ctx context.Context, now time.Time) ([]model.ChatDay, error) {
	cutoff := model.DayKey(now.AddDate(0, 0, -ChatRetentionDays))
	return s.chatRepo.ListSince(ctx, cutoff)
}

// PruneOld drops transcript days older than the retention window.
func (s *ChatService) PruneOld(ctx context.Context, now time.Time) error {
	cutoff := model.DayKey(now.AddDate(0, 0, -ChatRetentionDays))
	return s.chatRepo.DeleteBefore(ctx, cutoff)
}

// Send records the user message, obtains the assistant turn, persists
// both into today's transcript, and returns the new messages. A
// task-creation intent short-circuits the AI call; an AI failure yields
// a canned apology instead of a reply.
func (s *ChatService) Send(ctx context.Context, text string, now time.Time) ([]model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	s.seedIfNeeded(ctx, now)

	userMsg := model.ChatMessage{Role: model.RoleUser, Content: text, TS: now.UnixMilli()}

	if m := createTaskIntent.FindStringSubmatch(text); m != nil {
		title := strings.TrimSpace(m[1])
		if _, err := s.taskSvc.CreateTask(ctx, TaskInput{Title: title, Priority: model.PriorityLow}, now); err != nil {
			return nil, err
		}
		reply := model.ChatMessage{
			Role:    model.RoleAssistant,
			Content: "Tarefa criada: " + title,
			TS:      now.UnixMilli() + 1,
		}
		if err := s.chatRepo.AppendMessages(ctx, model.DayKey(now), userMsg, reply); err != nil {
			return nil, err
		}
		return []model.ChatMessage{userMsg, reply}, nil
	}

	history, err := s.flatHistory(ctx, now)
	if err != nil {
		return nil, err
	}

	content, err := s.provider.Chat(ctx, s.system, history, text)
	if err != nil {
		s.logger.Warn("chat completion failed", zap.Error(err))
		content = chatErrorReply
	}

	reply := model.ChatMessage{Role: model.RoleAssistant, Content: content, TS: now.UnixMilli() + 1}
	if err := s.chatRepo.AppendMessages(ctx, model.DayKey(now), userMsg, reply); err != nil {
		return nil, err
	}
	return []model.ChatMessage{userMsg, reply}, nil
}

// Nudge appends an assistant reminder to today's transcript when pending
// tasks remain, and reports whether it did. The daemon schedules this
// once a day in the evening.
func (s *ChatService) Nudge(ctx context.Context, now time.Time) (bool, error) {
	tasks, err := s.taskSvc.TasksForDay(ctx, now)
	if err != nil {
		return false, err
	}

	var pending []string
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, "• "+t.Title)
		}
	}
	if len(pending) == 0 {
		return false, nil
	}

	reminder := fmt.Sprintf(
		"Notei que você ainda tem tarefas pendentes hoje:\n%s\nQuer que eu te ajude a reorganizar ou adiar alguma delas?",
		strings.Join(pending, "\n"))
	msg := model.ChatMessage{Role: model.RoleAssistant, Content: reminder, TS: now.UnixMilli()}
	if err := s.chatRepo.AppendMessages(ctx, model.DayKey(now), msg); err != nil {
		return false, err
	}
	return true, nil
}

// flatHistory flattens the retained transcript into one ordered message
// list for the provider.
func (s *ChatService) flatHistory(ctx context.Context, now time.Time) ([]model.ChatMessage, error) {
	days, err := s.History(ctx, now)
	if err != nil {
		return nil, err
	}
	var messages []model.ChatMessage
	for _, day := range days {
		messages = append(messages, day.Messages...)
	}
	return messages, nil
}
