package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JYunth/wordler/wordler"
)

// starterWord is a strong conventional opener for standard five-letter games.
const starterWord = "crane"

// solve runs the interactive loop: suggest, read the guess the player
// actually made, read its result row, tighten the knowledge, repeat until
// solved, contradicted, or EOF.
func solve(cfg globalConfig) error {
	solver := wordler.NewSolver(cfg.dict, cfg.strategy)
	reader := bufio.NewReader(os.Stdin)

	for turn := 1; ; turn++ {
		fmt.Printf("\n--- Turn %d ---\n", turn)
		candidates := solver.Candidates()
		if len(candidates) == 0 {
			fmt.Println("no words match all the clues; a result row was probably entered wrong")
			return nil
		}
		if turn > 1 {
			fmt.Printf("possible words remaining: %d\n", len(candidates))
			if len(candidates) < 20 {
				fmt.Println("possibilities:", joinWords(candidates))
			}
		}
		fmt.Printf("suggested guess: %s\n", suggestion(cfg, solver, turn))

		guess, err := readGuess(cfg, solver, reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fb, err := readPattern(reader, guess)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fmt.Println(renderRow(guess, fb))
		if fb.Solved() {
			fmt.Printf("solved in %d turns: %s\n", turn, guess)
			return nil
		}
		if err := solver.Update(guess, fb); err != nil {
			return err
		}
	}
}

// suggestion picks what to propose this turn. The first turn of a standard
// five-letter game opens with a fixed strong starter; every other turn asks
// the configured strategy.
func suggestion(cfg globalConfig, solver *wordler.Solver, turn int) wordler.Word {
	if turn == 1 && cfg.dict.WordLen() == len(starterWord) && cfg.dict.Contains(starterWord) {
		return starterWord
	}
	word, ok := solver.Suggest()
	if !ok {
		// candidates were checked non-empty by the caller
		panic("wordler: no suggestion for non-empty candidate set")
	}
	return word
}

// readGuess prompts until the player enters a usable guess: right length,
// a-z only, in the dictionary, and hard-mode-legal when hard mode is on.
func readGuess(cfg globalConfig, solver *wordler.Solver, reader *bufio.Reader) (wordler.Word, error) {
	wordLen := cfg.dict.WordLen()
	for {
		line, err := readLine(reader, "enter the word you guessed: ")
		if err != nil {
			return "", err
		}
		guess := strings.ToLower(line)
		if len(guess) != wordLen {
			fmt.Printf("guess must be %d letters long\n", wordLen)
			continue
		}
		if !cfg.dict.Contains(guess) {
			fmt.Println("not a word in the dictionary")
			continue
		}
		if cfg.hard && !solver.Knowledge().HardModeOK(wordler.Word(guess)) {
			fmt.Println("hard mode: the guess must reuse every confirmed letter")
			continue
		}
		return wordler.Word(guess), nil
	}
}

// readPattern prompts until the player enters a well-formed g/y/- result row
// for guess.
func readPattern(reader *bufio.Reader, guess wordler.Word) (wordler.Pattern, error) {
	for {
		line, err := readLine(reader, fmt.Sprintf("results for %q (g=green, y=yellow, -=grey): ", guess))
		if err != nil {
			return nil, err
		}
		fb, err := wordler.ParsePattern(strings.ToLower(line))
		if err != nil {
			fmt.Println("invalid results format, use 'g', 'y' or '-'")
			continue
		}
		if len(fb) != len(guess) {
			fmt.Printf("results must be %d characters long\n", len(guess))
			continue
		}
		return fb, nil
	}
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
