package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/JYunth/wordler/wordfile"
	"github.com/JYunth/wordler/wordler"
)

// maxTries is how many guesses a simulated game gets.
const maxTries = 6

type globalConfig struct {
	dict     *wordler.Dictionary
	strategy wordler.Strategy
	hard     bool
	progress bool
	log      zerolog.Logger
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newConfig(dictPath string, wordLen int, strategyName string, hard, progress, verbose bool) (globalConfig, error) {
	log := newLogger(verbose)

	words := wordler.DefaultWords()
	if dictPath != "" {
		var err error
		words, err = wordfile.Load(dictPath)
		if err != nil {
			return globalConfig{}, err
		}
	}
	dict := wordler.NewDictionary(words, wordLen)
	if dict.Len() == 0 {
		return globalConfig{}, fmt.Errorf("no %d-letter words in the dictionary", wordLen)
	}
	strategy, err := wordler.StrategyByName(strategyName)
	if err != nil {
		return globalConfig{}, err
	}
	log.Debug().
		Int("words", dict.Len()).
		Int("length", wordLen).
		Str("strategy", strategyName).
		Msg("dictionary loaded")

	return globalConfig{
		dict:     dict,
		strategy: strategy,
		hard:     hard,
		progress: progress,
		log:      log,
	}, nil
}

// playRounds replays guess/pattern pairs supplied on the command line and
// prints the recommendation for the next round.
func playRounds(cfg globalConfig, args []string) error {
	solver := wordler.NewSolver(cfg.dict, cfg.strategy)
	for i := 0; i < len(args); i += 2 {
		guess := strings.ToLower(args[i])
		if !cfg.dict.Contains(guess) {
			return fmt.Errorf("guess not in dictionary: %s", guess)
		}
		fb, err := wordler.ParsePattern(args[i+1])
		if err != nil {
			return err
		}
		if err := solver.Update(wordler.Word(guess), fb); err != nil {
			return err
		}
		fmt.Println(renderRow(wordler.Word(guess), fb))
	}
	candidates := solver.Candidates()
	if len(candidates) == 0 {
		return fmt.Errorf("no words match the clues; a result row was probably entered wrong")
	}
	next, _ := solver.Suggest()
	fmt.Printf("suggest %s (%d possible)\n", next, len(candidates))
	if len(candidates) < 20 {
		fmt.Println("possibilities:", joinWords(candidates))
	}
	return nil
}

// simulateGame plays one full game with the encoder as oracle. It returns
// the number of guesses used and whether the solution was found in time.
func simulateGame(solver *wordler.Solver, solution, firstGuess wordler.Word) (int, bool) {
	solver.Reset()
	guess := firstGuess
	for try := 1; try <= maxTries; try++ {
		if guess == "" {
			g, ok := solver.Suggest()
			if !ok {
				return try, false
			}
			guess = g
		}
		fb := wordler.Encode(guess, solution)
		if fb.Solved() {
			return try, true
		}
		if err := solver.Update(guess, fb); err != nil {
			return try, false
		}
		guess = ""
	}
	return maxTries, false
}

func simulate(cfg globalConfig, firstWord string, solutionArgs []string) error {
	var solutions []wordler.Word
	if len(solutionArgs) == 0 {
		solutions = cfg.dict.Words()
	} else {
		for _, s := range solutionArgs {
			s = strings.ToLower(s)
			if !cfg.dict.Contains(s) {
				return fmt.Errorf("solution not in dictionary: %s", s)
			}
			solutions = append(solutions, wordler.Word(s))
		}
	}
	if firstWord != "" && !cfg.dict.Contains(firstWord) {
		return fmt.Errorf("first word not in dictionary: %s", firstWord)
	}

	var bar *progressbar.ProgressBar
	if cfg.progress {
		bar = progressbar.Default(int64(len(solutions)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(solutions)))
	}

	solver := wordler.NewSolver(cfg.dict, cfg.strategy)
	distribution := make(map[int]int)
	var failed []wordler.Word
	totalTries := 0
	for _, solution := range solutions {
		tries, ok := simulateGame(solver, solution, wordler.Word(firstWord))
		if !ok {
			failed = append(failed, solution)
		} else {
			distribution[tries]++
			totalTries += tries
		}
		_ = bar.Add(1)
	}

	keys := make([]int, 0, len(distribution))
	for k := range distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, tries := range keys {
		fmt.Printf("%d guesses: %d games\n", tries, distribution[tries])
	}
	solved := len(solutions) - len(failed)
	if solved > 0 {
		fmt.Printf("solved %d/%d, average %.2f guesses\n",
			solved, len(solutions), float64(totalTries)/float64(solved))
	}
	if len(failed) > 0 {
		fmt.Printf("unsolved in %d tries: %s\n", maxTries, joinWords(failed))
	}
	return nil
}

// firstWords ranks starting words by the frequency heuristic score.
func firstWords(cfg globalConfig, top int) {
	scores := wordler.FrequencyScores(cfg.dict.Words())
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	if top > len(scores) {
		top = len(scores)
	}
	for _, ws := range scores[:top] {
		fmt.Println(ws.Word, ws.Score)
	}
}

func main() {
	dictPath := ""
	wordLen := 5
	strategyName := "frequency"
	hard := false
	progress := false
	verbose := false
	// command specific flags
	firstWord := ""
	topCount := 20

	cmd := &cli.Command{
		Name:  "wordler",
		Usage: "wordle solving assistant",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dict",
				Aliases:     []string{"d"},
				Usage:       "word list file, one word per line; default is the embedded list",
				Destination: &dictPath,
			},
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Value:       5,
				Usage:       "word length for this session",
				Destination: &wordLen,
			},
			&cli.StringFlag{
				Name:        "strategy",
				Aliases:     []string{"s"},
				Value:       "frequency",
				Usage:       "guess selection strategy: frequency or minimax",
				Destination: &strategyName,
			},
			&cli.BoolFlag{
				Name:        "hard",
				Usage:       "hard mode: guesses must reuse all confirmed letters",
				Destination: &hard,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "debug logging",
				Destination: &verbose,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "interactive solver: enter each guess and its g/y/- result row, get the next suggestion",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := newConfig(dictPath, wordLen, strategyName, hard, progress, verbose)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return solve(cfg)
				},
			},
			{
				Name:  "play",
				Usage: "play [guess pattern]... non-interactive: replay rounds and print the recommendation",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess pattern", 1)
					}
					if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess pattern pair", 2)
					}
					cfg, err := newConfig(dictPath, wordLen, strategyName, hard, progress, verbose)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return playRounds(cfg, cmd.Args().Slice())
				},
			},
			{
				Name: "sim",
				Usage: `sim [solution]... simulate full games against each solution, or against
					every dictionary word when none are given, and print the guess distribution`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "first",
						Aliases:     []string{"f"},
						Usage:       "fixed first guess; default lets the strategy open",
						Destination: &firstWord,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := newConfig(dictPath, wordLen, strategyName, hard, progress, verbose)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return simulate(cfg, strings.ToLower(firstWord), cmd.Args().Slice())
				},
			},
			{
				Name:  "first",
				Usage: "rank starting words by letter-frequency score",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Aliases:     []string{"t"},
						Value:       20,
						Usage:       "number of words to print",
						Destination: &topCount,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := newConfig(dictPath, wordLen, strategyName, hard, progress, verbose)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					firstWords(cfg, topCount)
					return nil
				},
			},
			{
				Name:  "remove",
				Usage: "remove [word] delete a word from the dictionary file given with --dict",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if dictPath == "" {
						return cli.Exit("remove needs --dict pointing at a word-list file", 1)
					}
					if cmd.NArg() != 1 {
						return cli.Exit("remove takes exactly one word", 1)
					}
					log := newLogger(verbose)
					word := cmd.Args().First()
					if err := wordfile.Remove(dictPath, word); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					log.Info().Str("word", word).Str("dict", dictPath).Msg("removed from word list")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log := newLogger(false)
		log.Fatal().Err(err).Msg("wordler failed")
	}
}
