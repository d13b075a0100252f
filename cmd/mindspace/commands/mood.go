package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mindspace/internal/model"
	"mindspace/internal/service"
)

// NewMoodCmd creates the mood command tree.
func NewMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Record and view your mood journal",
	}
	cmd.AddCommand(newMoodSetCmd())
	cmd.AddCommand(newMoodShowCmd())
	return cmd
}

func newMoodSetCmd() *cobra.Command {
	var note string
	var emotions []string

	cmd := &cobra.Command{
		Use:   "set <score>",
		Short: "Record today's mood on the 1-5 scale",
		Long: "Record today's mood. Scores: 1=" + model.MoodLabel(1) + " ... 5=" + model.MoodLabel(5) +
			". Suggested emotions: " + strings.Join(model.EmotionTags, ", ") + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil || !model.ValidMoodScore(score) {
				return fmt.Errorf("mood score must be 1-5")
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := a.moods.RecordMood(context.Background(), service.MoodInput{
				Mood:     score,
				Note:     note,
				Emotions: emotions,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Humor registrado: %s (%d/5)\n", model.MoodLabel(entry.Mood), entry.Mood)
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text note")
	cmd.Flags().StringSliceVarP(&emotions, "emotions", "e", nil, "emotion tags")
	return cmd
}

func newMoodShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's mood entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := a.moods.TodaysMood(context.Background(), time.Now())
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Println("Sem registro de humor hoje.")
				return nil
			}
			fmt.Printf("Humor de hoje: %s (%d/5)\n", model.MoodLabel(entry.Mood), entry.Mood)
			if len(entry.Emotions) > 0 {
				fmt.Printf("Emoções: %s\n", strings.Join(entry.Emotions, ", "))
			}
			if entry.Note != "" {
				fmt.Printf("Nota: %s\n", entry.Note)
			}
			return nil
		},
	}
}
