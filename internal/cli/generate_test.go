package cli

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/rcliao/corpusgen/internal/config"
	"github.com/rcliao/corpusgen/internal/model"
)

func newGenerateFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "generate"}
	cmd.Flags().StringP("model", "m", "", "")
	cmd.Flags().String("mode", "", "")
	cmd.Flags().String("difficulty", "", "")
	cmd.Flags().String("length", "", "")
	cmd.Flags().Bool("avoid-recent", true, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestGenerationConfig_Defaults(t *testing.T) {
	d := config.DefaultConfig().Defaults
	d.AvoidRecent = false

	got, err := generationConfig(newGenerateFlags(t), d)
	if err != nil {
		t.Fatalf("generationConfig: %v", err)
	}
	want := model.GenerationConfig{
		Mode:        model.Mode(d.Mode),
		Difficulty:  model.Difficulty(d.Difficulty),
		Length:      model.Length(d.Length),
		AvoidRecent: false,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGenerationConfig_FlagsOverride(t *testing.T) {
	d := config.DefaultConfig().Defaults
	cmd := newGenerateFlags(t, "--mode", "paragraph", "--difficulty", "hard", "--length", "long", "--avoid-recent=false")

	got, err := generationConfig(cmd, d)
	if err != nil {
		t.Fatalf("generationConfig: %v", err)
	}
	want := model.GenerationConfig{
		Mode:        model.ModeParagraph,
		Difficulty:  model.DifficultyHard,
		Length:      model.LengthLong,
		AvoidRecent: false,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGenerationConfig_Invalid(t *testing.T) {
	d := config.DefaultConfig().Defaults
	for _, args := range [][]string{
		{"--mode", "poem"},
		{"--difficulty", "extreme"},
		{"--length", "huge"},
	} {
		if _, err := generationConfig(newGenerateFlags(t, args...), d); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestFlagOr(t *testing.T) {
	cmd := newGenerateFlags(t, "-m", "fairy")
	if got := flagOr(cmd, "model", "math"); got != "fairy" {
		t.Errorf("model = %q, want fairy", got)
	}
	if got := flagOr(cmd, "mode", "single"); got != "single" {
		t.Errorf("mode = %q, want single", got)
	}
}
