package tui

import (
	"bufio"
	"dungeon-crawler/internal/config"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Setup asks for every setting cfg still lacks: the tile scale and the
// difficulty. Each prompt repeats until the answer is valid.
func Setup(cfg config.Config, in *bufio.Reader, out io.Writer) (config.Config, error) {
	if cfg.Complete() {
		return cfg, nil
	}
	if cfg.TileScale < 1 {
		for {
			answer, err := ask(in, out, "Enter tile size (integer >= 1): ")
			if err != nil {
				return cfg, fmt.Errorf("setup: %w", err)
			}
			scale, err := config.ParseTileScale(answer)
			if errors.Is(err, config.ErrInvalidTileScale) {
				fmt.Fprintln(out, "Invalid input. Please enter a positive integer.")
				continue
			}
			if err != nil {
				return cfg, err
			}
			cfg.TileScale = scale
			break
		}
	}

	if cfg.Difficulty == config.DifficultyUnset {
		fmt.Fprintln(out, "Select difficulty: (E)asy, (M)edium, (H)ard")
		for {
			answer, err := ask(in, out, "Enter difficulty (e/m/h): ")
			if err != nil {
				return cfg, fmt.Errorf("setup: %w", err)
			}
			d, err := config.ParseDifficulty(answer)
			if errors.Is(err, config.ErrInvalidDifficulty) {
				fmt.Fprintln(out, "Invalid input. Please enter 'e', 'm', or 'h'.")
				continue
			}
			if err != nil {
				return cfg, err
			}
			cfg.Difficulty = d
			break
		}
	}
	return cfg, nil
}

// ask prints prompt and returns the trimmed answer. A final line without a
// newline still counts; an empty read at end of input is io.EOF.
func ask(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
